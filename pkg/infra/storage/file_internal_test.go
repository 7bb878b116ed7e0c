package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
)

// closeFailWriter accepts writes and fails on Close, as a file whose
// buffered data cannot be flushed does
type closeFailWriter struct {
	bytes.Buffer
}

func (w *closeFailWriter) Close() error {
	return errors.New("flush failed")
}

// writeFailWriter fails every write
type writeFailWriter struct {
	closed bool
}

func (w *writeFailWriter) Write(p []byte) (int, error) {
	return 0, errors.New("no space left")
}

func (w *writeFailWriter) Close() error {
	w.closed = true
	return nil
}

func TestFileStore_Save_CloseError(t *testing.T) {
	store := NewFileStore(t.TempDir())
	w := &closeFailWriter{}
	store.create = func(string) (io.WriteCloser, error) { return w, nil }

	path, err := store.Save(context.Background(), "r.json", &model.AnalysisResult{Contents: map[string]string{}})
	gt.Error(t, err)
	gt.Equal(t, path, "")
	gt.String(t, err.Error()).Contains("failed to close output file")
	gt.True(t, w.Len() > 0)
}

func TestFileStore_Save_WriteError(t *testing.T) {
	store := NewFileStore(t.TempDir())
	w := &writeFailWriter{}
	store.create = func(string) (io.WriteCloser, error) { return w, nil }

	path, err := store.Save(context.Background(), "r.json", &model.AnalysisResult{Contents: map[string]string{}})
	gt.Error(t, err)
	gt.Equal(t, path, "")
	gt.String(t, err.Error()).Contains("failed to write analysis result")
	gt.True(t, w.closed)
}
