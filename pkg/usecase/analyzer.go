package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"runtime/debug"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/domain/interfaces"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
	"golang.org/x/sync/errgroup"
)

type analyzer struct {
	extensions model.ExtensionSet
	progress   interfaces.ProgressObserver
}

// AnalyzerOption is a functional option for the analyzer
type AnalyzerOption func(*analyzer)

// WithExtensions replaces the extension allow-list used for content extraction
func WithExtensions(exts model.ExtensionSet) AnalyzerOption {
	return func(a *analyzer) {
		a.extensions = exts
	}
}

// WithProgress sets the observer notified for every extracted entry
func WithProgress(p interfaces.ProgressObserver) AnalyzerOption {
	return func(a *analyzer) {
		a.progress = p
	}
}

// NewAnalyzer creates a new instance of AnalyzerUseCase
func NewAnalyzer(opts ...AnalyzerOption) interfaces.AnalyzerUseCase {
	a := &analyzer{
		extensions: model.DefaultExtensions,
		progress:   nopProgress{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze opens the ZIP archive at path and builds the tree rendering and
// extracted contents. It fails before touching the file if path does not
// exist.
func (uc *analyzer) Analyze(ctx context.Context, path string) (*model.AnalysisResult, error) {
	logger := ctxlog.From(ctx)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			logger.Error("File not found", "path", path)
			return nil, goerr.Wrap(err, "archive does not exist", goerr.V("path", path), goerr.T(model.ErrTagNotFound))
		}
		logger.Error("Failed to stat archive", "path", path, "error", err)
		return nil, goerr.Wrap(err, "failed to stat archive", goerr.V("path", path), goerr.T(model.ErrTagAnalysisFailed))
	}
	if info.IsDir() {
		logger.Error("File not found", "path", path, "reason", "is a directory")
		return nil, goerr.New("archive is a directory", goerr.V("path", path), goerr.T(model.ErrTagNotFound))
	}

	rc, err := zip.OpenReader(path)
	if err != nil && !(errors.Is(err, zip.ErrInsecurePath) && rc != nil) {
		return nil, classifyOpenError(ctx, err, goerr.V("path", path))
	}
	defer rc.Close()

	logger.Debug("Opened archive", "path", path, "entries", len(rc.File))
	return uc.analyzeReader(ctx, &rc.Reader)
}

// AnalyzeBytes runs the same pipeline as Analyze over an in-memory archive
func (uc *analyzer) AnalyzeBytes(ctx context.Context, data []byte) (*model.AnalysisResult, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil && !(errors.Is(err, zip.ErrInsecurePath) && r != nil) {
		return nil, classifyOpenError(ctx, err, goerr.V("size", len(data)))
	}

	ctxlog.From(ctx).Debug("Opened in-memory archive", "size", len(data), "entries", len(r.File))
	return uc.analyzeReader(ctx, r)
}

func classifyOpenError(ctx context.Context, err error, opts ...goerr.Option) error {
	logger := ctxlog.From(ctx)

	if errors.Is(err, zip.ErrFormat) || errors.Is(err, io.ErrUnexpectedEOF) {
		logger.Error("Invalid ZIP file", "error", err)
		return goerr.Wrap(err, "invalid ZIP archive", append(opts, goerr.T(model.ErrTagCorruptArchive))...)
	}

	logger.Error("Failed to open archive", "error", err)
	return goerr.Wrap(err, "failed to open archive", append(opts, goerr.T(model.ErrTagAnalysisFailed))...)
}

// analyzeReader runs tree rendering and content extraction over the same
// reader. Both branches only read, and zip.Reader allows concurrent Open.
func (uc *analyzer) analyzeReader(ctx context.Context, r *zip.Reader) (*model.AnalysisResult, error) {
	logger := ctxlog.From(ctx)

	names := make([]string, len(r.File))
	for i, f := range r.File {
		names[i] = entryName(f)
	}

	var (
		structure string
		contents  map[string]string
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		defer recoverBranch(&err)
		structure = RenderFileTree(BuildFileTree(names))
		return nil
	})
	eg.Go(func() (err error) {
		defer recoverBranch(&err)
		contents, err = extractContents(egCtx, r.File, uc.extensions, uc.progress)
		return err
	})

	if err := eg.Wait(); err != nil {
		logger.Error("Unexpected error during analysis", "error", err)
		return nil, goerr.Wrap(err, "analysis failed", goerr.V("entries", len(names)), goerr.T(model.ErrTagAnalysisFailed))
	}

	logger.Info("Analyzed archive",
		"entries", len(names),
		"extracted", len(contents),
	)

	return &model.AnalysisResult{
		Structure: structure,
		Contents:  contents,
	}, nil
}

func recoverBranch(err *error) {
	if r := recover(); r != nil {
		*err = goerr.New("panic during analysis",
			goerr.V("recover", r),
			goerr.V("stack", string(debug.Stack())),
		)
	}
}

type nopProgress struct{}

func (nopProgress) Start(int)      {}
func (nopProgress) Advance(string) {}
func (nopProgress) Finish()        {}
