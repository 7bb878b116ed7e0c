package usecase

import (
	"archive/zip"
	"context"
	"io"
	"unicode/utf8"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/domain/interfaces"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
	"golang.org/x/text/encoding/charmap"
)

// entryOutcome is the result of reading a single archive entry
type entryOutcome int

const (
	entryDecoded entryOutcome = iota
	entryNotText
	entryReadFailed
)

// entryName returns the archive path of f as UTF-8. Names stored without
// the UTF-8 flag that are not valid UTF-8 are decoded as code page 437.
func entryName(f *zip.File) string {
	if !f.NonUTF8 || utf8.ValidString(f.Name) {
		return f.Name
	}
	name, err := charmap.CodePage437.NewDecoder().String(f.Name)
	if err != nil {
		return f.Name
	}
	return name
}

type selectedEntry struct {
	file *zip.File
	name string
}

// selectEntries returns non-junk entries whose name matches the allow-list,
// in archive order
func selectEntries(files []*zip.File, exts model.ExtensionSet) []selectedEntry {
	var selected []selectedEntry
	for _, f := range files {
		name := entryName(f)
		if model.IsJunkEntry(name) || !exts.Match(name) {
			continue
		}
		selected = append(selected, selectedEntry{file: f, name: name})
	}
	return selected
}

// extractContents decodes every selected entry as UTF-8. Entries that are
// not valid UTF-8 or cannot be read are logged and skipped. Later entries
// overwrite earlier ones with the same clean name. Only context cancellation
// stops the loop.
func extractContents(ctx context.Context, files []*zip.File, exts model.ExtensionSet, progress interfaces.ProgressObserver) (map[string]string, error) {
	logger := ctxlog.From(ctx)

	selected := selectEntries(files, exts)
	contents := make(map[string]string, len(selected))

	progress.Start(len(selected))
	defer progress.Finish()

	for _, e := range selected {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "extraction interrupted", goerr.V("entry", e.name))
		}

		cleanName := model.CleanName(e.name)
		text, outcome, err := readEntry(e.file)

		switch outcome {
		case entryDecoded:
			contents[cleanName] = text
			logger.Debug("Read file", "file", cleanName)
		case entryNotText:
			logger.Warn("Binary data in file", "file", cleanName)
		case entryReadFailed:
			logger.Error("Failed to read file", "file", cleanName, "error", err)
		}

		progress.Advance(cleanName)
	}

	return contents, nil
}

func readEntry(f *zip.File) (string, entryOutcome, error) {
	rc, err := f.Open()
	if err != nil {
		return "", entryReadFailed, goerr.Wrap(err, "failed to open entry", goerr.V("entry", f.Name))
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", entryReadFailed, goerr.Wrap(err, "failed to read entry", goerr.V("entry", f.Name))
	}

	if !utf8.Valid(data) {
		return "", entryNotText, nil
	}

	return string(data), entryDecoded, nil
}
