package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/domain/interfaces"
	githubinfra "github.com/m-mizutani/zipscope/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration. App credentials take precedence
// over a token when both are set.
type GitHub struct {
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKey     string
	BaseURL        string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token (public repositories work without it)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("ZIPSCOPE_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("ZIPSCOPE_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("ZIPSCOPE_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "GitHub App private key (PEM content or path to a PEM file)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("ZIPSCOPE_GITHUB_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("ZIPSCOPE_GITHUB_BASE_URL"),
		},
	}
}

// NewClient builds a GitHub client from the configuration
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	var opts []githubinfra.Option
	if c.BaseURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.BaseURL))
	}

	if c.AppID == 0 && c.InstallationID == 0 && c.PrivateKey == "" {
		return githubinfra.NewTokenClient(c.Token, opts...)
	}

	if c.AppID == 0 || c.InstallationID == 0 || c.PrivateKey == "" {
		return nil, goerr.New("github-app-id, github-installation-id and github-private-key must be set together")
	}

	key, err := c.loadPrivateKey()
	if err != nil {
		return nil, err
	}

	return githubinfra.NewClient(c.AppID, c.InstallationID, key, opts...)
}

func (c *GitHub) loadPrivateKey() ([]byte, error) {
	if info, err := os.Stat(c.PrivateKey); err == nil && !info.IsDir() {
		key, err := os.ReadFile(c.PrivateKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read GitHub App private key", goerr.V("path", c.PrivateKey))
		}
		return key, nil
	}
	return []byte(c.PrivateKey), nil
}
