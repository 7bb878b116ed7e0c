package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/zipscope/pkg/cli/config"
	"github.com/m-mizutani/zipscope/pkg/domain/interfaces"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
	"github.com/m-mizutani/zipscope/pkg/infra/progress"
	"github.com/m-mizutani/zipscope/pkg/infra/storage"
	"github.com/m-mizutani/zipscope/pkg/usecase"
)

var (
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
)

// newProgress returns a progress bar on w, or nil when quiet
func newProgress(cfg *config.Output, w io.Writer) interfaces.ProgressObserver {
	if cfg.Quiet {
		return nil
	}
	return progress.NewBar(w, "Analyzing files")
}

// newAnalyzer builds the analyzer from extraction and output configuration
func newAnalyzer(extractionCfg *config.Extraction, outputCfg *config.Output, errWriter io.Writer) (interfaces.AnalyzerUseCase, error) {
	exts, err := extractionCfg.ExtensionSet()
	if err != nil {
		return nil, err
	}

	opts := []usecase.AnalyzerOption{usecase.WithExtensions(exts)}
	if p := newProgress(outputCfg, errWriter); p != nil {
		opts = append(opts, usecase.WithProgress(p))
	}

	return usecase.NewAnalyzer(opts...), nil
}

// outputFileName returns "<stem>_analysis.json" for an archive name
func outputFileName(name string) string {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_analysis.json"
}

// emitResult writes result to the output directory and prints the tree and
// a summary to w
func emitResult(ctx context.Context, w io.Writer, cfg *config.Output, fileName string, result *model.AnalysisResult) error {
	path, err := storage.NewFileStore(cfg.Dir).Save(ctx, fileName, result)
	if err != nil {
		return err
	}

	counter, err := cfg.TokenCounter()
	if err != nil {
		return err
	}
	summary := usecase.Summarize(result, counter)

	successColor.Fprintf(w, "✅ Results saved to: %s\n", path)
	fmt.Fprintf(w, "\nRepository structure:\n%s\n", result.Structure)
	fmt.Fprintf(w, "\n📊 Analyzed files: %d\n", summary.Files)
	fmt.Fprintf(w, "📦 Total size: %d bytes\n", summary.Bytes)
	fmt.Fprintf(w, "🔢 Estimated tokens: %d\n", summary.Tokens)

	return nil
}
