package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdAnalyze() *cli.Command {
	var (
		extractionCfg config.Extraction
		outputCfg     config.Output
	)

	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Analyze a repository ZIP archive and save the result as JSON",
		ArgsUsage: "<zip-path>",
		Flags:     append(extractionCfg.Flags(), outputCfg.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 1 {
				return goerr.New("exactly one archive path is required", goerr.V("args", c.Args().Slice()))
			}
			zipPath := c.Args().First()
			logger := ctxlog.From(ctx)

			analyzer, err := newAnalyzer(&extractionCfg, &outputCfg, c.Root().ErrWriter)
			if err != nil {
				return err
			}

			infoColor.Fprintf(c.Root().Writer, "🔍 Analyzing archive: %s\n", zipPath)
			logger.Debug("Starting analysis", "path", zipPath, "output_dir", outputCfg.Dir)

			result, err := analyzer.Analyze(ctx, zipPath)
			if err != nil {
				return goerr.Wrap(err, "failed to analyze archive", goerr.V("path", zipPath))
			}

			return emitResult(ctx, c.Root().Writer, &outputCfg, outputFileName(zipPath), result)
		},
	}
}
