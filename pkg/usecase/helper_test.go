package usecase_test

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

// zipEntry is one archive member. A name ending with "/" is stored as a
// directory entry. nonUTF8 stores the name without the UTF-8 flag.
type zipEntry struct {
	name    string
	content []byte
	nonUTF8 bool
}

func textEntry(name, content string) zipEntry {
	return zipEntry{name: name, content: []byte(content)}
}

// createTestZip builds an archive with entries in the given order
func createTestZip(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	for _, e := range entries {
		writer, err := zipWriter.CreateHeader(&zip.FileHeader{
			Name:    e.name,
			Method:  zip.Store,
			NonUTF8: e.nonUTF8,
		})
		gt.NoError(t, err)

		if len(e.content) > 0 {
			_, err = writer.Write(e.content)
			gt.NoError(t, err)
		}
	}

	gt.NoError(t, zipWriter.Close())
	return buf.Bytes()
}

// writeTestZip stores data in a temporary file and returns its path
func writeTestZip(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repo.zip")
	gt.NoError(t, os.WriteFile(path, data, 0600))
	return path
}
