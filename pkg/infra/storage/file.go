package storage

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
)

// FileStore writes analysis results as indented JSON files into a directory
type FileStore struct {
	dir    string
	create func(path string) (io.WriteCloser, error)
}

// NewFileStore creates a FileStore rooted at dir. The directory is created on
// first Save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
		create: func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		},
	}
}

// Save writes result to <dir>/<name> and returns the written path. HTML
// characters in file contents are kept as is.
func (s *FileStore) Save(ctx context.Context, name string, result *model.AnalysisResult) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", goerr.New("invalid result file name", goerr.V("name", name))
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create output directory", goerr.V("dir", s.dir))
	}

	path := filepath.Join(s.dir, name)
	f, err := s.create(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}

	if err := writeJSON(f, result); err != nil {
		_ = f.Close()
		return "", goerr.Wrap(err, "failed to write analysis result", goerr.V("path", path))
	}
	if err := f.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close output file", goerr.V("path", path))
	}

	ctxlog.From(ctx).Debug("Saved analysis result", "path", path, "files", len(result.Contents))
	return path, nil
}

func writeJSON(w io.Writer, result *model.AnalysisResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	return encoder.Encode(result)
}
