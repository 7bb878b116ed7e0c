package usecase

import (
	"github.com/m-mizutani/zipscope/pkg/domain/interfaces"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
)

// Summarize counts files, bytes and estimated tokens of extracted contents
func Summarize(result *model.AnalysisResult, counter interfaces.TokenCounter) *model.AnalysisSummary {
	summary := &model.AnalysisSummary{
		Files: len(result.Contents),
	}

	for _, text := range result.Contents {
		summary.Bytes += len(text)
		if counter != nil {
			summary.Tokens += counter.Count(text)
		}
	}

	return summary
}
