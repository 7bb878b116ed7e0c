package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/zipscope/pkg/cli/config"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestExtraction_ExtensionSet(t *testing.T) {
	t.Run("default allow-list", func(t *testing.T) {
		cfg := &config.Extraction{}
		exts, err := cfg.ExtensionSet()
		gt.NoError(t, err)
		gt.V(t, exts).Equal(model.DefaultExtensions)
	})

	t.Run("flags override file", func(t *testing.T) {
		cfg := &config.Extraction{
			Extensions:     []string{"go", ".md"},
			ExtensionsFile: writeFile(t, "ext.toml", `extensions = [".py"]`),
		}
		exts, err := cfg.ExtensionSet()
		gt.NoError(t, err)
		gt.V(t, exts).Equal(model.ExtensionSet{".go", ".md"})
	})

	t.Run("TOML file", func(t *testing.T) {
		cfg := &config.Extraction{
			ExtensionsFile: writeFile(t, "ext.toml", "extensions = [\".py\", \"rs\", \"Dockerfile\"]\n"),
		}
		exts, err := cfg.ExtensionSet()
		gt.NoError(t, err)
		gt.V(t, exts).Equal(model.ExtensionSet{".py", ".rs", "Dockerfile"})
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := &config.Extraction{ExtensionsFile: filepath.Join(t.TempDir(), "missing.toml")}
		_, err := cfg.ExtensionSet()
		gt.Error(t, err)
	})

	t.Run("broken TOML", func(t *testing.T) {
		cfg := &config.Extraction{ExtensionsFile: writeFile(t, "ext.toml", "extensions = [")}
		_, err := cfg.ExtensionSet()
		gt.Error(t, err)
	})

	t.Run("empty list", func(t *testing.T) {
		cfg := &config.Extraction{ExtensionsFile: writeFile(t, "ext.toml", "extensions = []")}
		_, err := cfg.ExtensionSet()
		gt.Error(t, err)
	})
}
