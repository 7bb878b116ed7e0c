package interfaces

import (
	"context"

	"github.com/m-mizutani/zipscope/pkg/domain/model"
)

// AnalyzerUseCase builds an AnalysisResult from a ZIP archive
type AnalyzerUseCase interface {
	// Analyze reads the archive stored at path
	Analyze(ctx context.Context, path string) (*model.AnalysisResult, error)

	// AnalyzeBytes reads an archive already held in memory
	AnalyzeBytes(ctx context.Context, data []byte) (*model.AnalysisResult, error)
}

// SourceUseCase downloads a repository snapshot and analyzes it
type SourceUseCase interface {
	AnalyzeGitHub(ctx context.Context, src *model.SourceInfo) (*model.AnalysisResult, error)
}

// ProgressObserver receives per-entry progress of content extraction
type ProgressObserver interface {
	Start(total int)
	Advance(name string)
	Finish()
}

// TokenCounter estimates the number of LLM tokens in a text
type TokenCounter interface {
	Count(text string) int
}

// ResultStore persists analysis results under a file name
type ResultStore interface {
	Save(ctx context.Context, name string, result *model.AnalysisResult) (string, error)
}
