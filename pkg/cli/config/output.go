package config

import (
	"github.com/m-mizutani/zipscope/pkg/domain/interfaces"
	"github.com/m-mizutani/zipscope/pkg/infra/tokenizer"
	"github.com/urfave/cli/v3"
)

// Output holds configuration of how CLI results are presented and stored
type Output struct {
	Dir        string
	Quiet      bool
	TokenModel string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"o"},
			Usage:       "Directory to write the analysis JSON to",
			Value:       "out",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("ZIPSCOPE_OUTPUT_DIR"),
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "Do not show the progress bar",
			Destination: &c.Quiet,
		},
		&cli.StringFlag{
			Name:        "token-model",
			Usage:       "Model name for tiktoken token counting (bytes/4 estimate when empty)",
			Destination: &c.TokenModel,
			Sources:     cli.EnvVars("ZIPSCOPE_TOKEN_MODEL"),
		},
	}
}

// TokenCounter returns a tiktoken counter for --token-model, or the byte
// based estimate when no model is set
func (c *Output) TokenCounter() (interfaces.TokenCounter, error) {
	if c.TokenModel == "" {
		return &tokenizer.SimpleCounter{}, nil
	}
	return tokenizer.NewTiktokenCounter(c.TokenModel)
}
