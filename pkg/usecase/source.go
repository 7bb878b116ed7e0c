package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/domain/interfaces"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
)

type sourceUseCase struct {
	githubClient interfaces.GitHubClient
	analyzer     interfaces.AnalyzerUseCase
}

// NewSource creates a new instance of SourceUseCase
func NewSource(githubClient interfaces.GitHubClient, analyzer interfaces.AnalyzerUseCase) interfaces.SourceUseCase {
	return &sourceUseCase{
		githubClient: githubClient,
		analyzer:     analyzer,
	}
}

// AnalyzeGitHub downloads the zipball of src and analyzes it in memory
func (uc *sourceUseCase) AnalyzeGitHub(ctx context.Context, src *model.SourceInfo) (*model.AnalysisResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Downloading repository zipball",
		"owner", src.Owner,
		"repo", src.Repo,
		"ref", src.Ref,
	)

	zipData, err := uc.githubClient.DownloadZipball(ctx, src.Owner, src.Repo, src.Ref)
	if err != nil {
		logger.Error("Failed to download zipball",
			"error", err,
			"owner", src.Owner,
			"repo", src.Repo,
			"ref", src.Ref,
		)
		return nil, goerr.Wrap(err, "failed to download zipball",
			goerr.V("owner", src.Owner),
			goerr.V("repo", src.Repo),
			goerr.V("ref", src.Ref),
		)
	}

	logger.Info("Downloaded zipball",
		"size_bytes", len(zipData),
		"owner", src.Owner,
		"repo", src.Repo,
	)

	result, err := uc.analyzer.AnalyzeBytes(ctx, zipData)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to analyze zipball",
			goerr.V("owner", src.Owner),
			goerr.V("repo", src.Repo),
		)
	}

	return result, nil
}
