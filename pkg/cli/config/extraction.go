package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Extraction holds the extension allow-list configuration
type Extraction struct {
	Extensions     []string
	ExtensionsFile string
}

// extensionsFile is the layout of --extensions-file
type extensionsFile struct {
	Extensions []string `toml:"extensions"`
}

// Flags returns CLI flags for extraction configuration
func (c *Extraction) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "ext",
			Usage:       "File extension to extract (repeatable, overrides the default allow-list)",
			Destination: &c.Extensions,
		},
		&cli.StringFlag{
			Name:        "extensions-file",
			Usage:       "TOML file with an extensions array replacing the default allow-list",
			Destination: &c.ExtensionsFile,
			Sources:     cli.EnvVars("ZIPSCOPE_EXTENSIONS_FILE"),
		},
	}
}

// ExtensionSet returns the allow-list from --ext, --extensions-file or the
// default set, in that order of precedence
func (c *Extraction) ExtensionSet() (model.ExtensionSet, error) {
	var exts model.ExtensionSet

	switch {
	case len(c.Extensions) > 0:
		exts = model.NewExtensionSet(c.Extensions)

	case c.ExtensionsFile != "":
		raw, err := os.ReadFile(c.ExtensionsFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read extensions file", goerr.V("path", c.ExtensionsFile))
		}

		var file extensionsFile
		if err := toml.Unmarshal(raw, &file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse extensions file", goerr.V("path", c.ExtensionsFile))
		}
		exts = model.NewExtensionSet(file.Extensions)

	default:
		return model.DefaultExtensions, nil
	}

	if len(exts) == 0 {
		return nil, goerr.New("extension allow-list is empty")
	}
	return exts, nil
}
