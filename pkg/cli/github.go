package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/cli/config"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
	"github.com/m-mizutani/zipscope/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdGitHub() *cli.Command {
	var (
		githubCfg     config.GitHub
		extractionCfg config.Extraction
		outputCfg     config.Output
	)

	flags := append(githubCfg.Flags(), extractionCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)

	return &cli.Command{
		Name:      "github",
		Aliases:   []string{"gh"},
		Usage:     "Download a GitHub repository zipball and analyze it",
		ArgsUsage: "<owner/repo[@ref]>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 1 {
				return goerr.New("exactly one repository is required", goerr.V("args", c.Args().Slice()))
			}

			src, err := model.ParseSourceInfo(c.Args().First())
			if err != nil {
				return err
			}

			githubClient, err := githubCfg.NewClient()
			if err != nil {
				return err
			}

			analyzer, err := newAnalyzer(&extractionCfg, &outputCfg, c.Root().ErrWriter)
			if err != nil {
				return err
			}

			infoColor.Fprintf(c.Root().Writer, "🔍 Analyzing repository: %s\n", src.String())

			result, err := usecase.NewSource(githubClient, analyzer).AnalyzeGitHub(ctx, src)
			if err != nil {
				return goerr.Wrap(err, "failed to analyze repository", goerr.V("source", src.String()))
			}

			return emitResult(ctx, c.Root().Writer, &outputCfg, src.Repo+"_analysis.json", result)
		},
	}
}
