package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/domain/interfaces"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
	"github.com/m-mizutani/zipscope/pkg/utils/async"
)

// analyzeResponse is the body of a successful POST /analyze
type analyzeResponse struct {
	ID        string            `json:"id"`
	Structure string            `json:"structure"`
	Contents  map[string]string `json:"contents"`
}

// AnalyzeHandler analyzes a ZIP archive sent as the request body
type AnalyzeHandler struct {
	analyzerUC    interfaces.AnalyzerUseCase
	maxUploadSize int64
	store         interfaces.ResultStore
	dispatcher    *async.Dispatcher
}

// NewAnalyzeHandler creates a new AnalyzeHandler. store may be nil, in which
// case results are only returned in the response.
func NewAnalyzeHandler(analyzerUC interfaces.AnalyzerUseCase, maxUploadSize int64, store interfaces.ResultStore, dispatcher *async.Dispatcher) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzerUC:    analyzerUC,
		maxUploadSize: maxUploadSize,
		store:         store,
		dispatcher:    dispatcher,
	}
}

// Handle processes analysis requests
func (h *AnalyzeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadSize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logger.Warn("Uploaded archive too large", "limit", maxErr.Limit)
			writeError(ctx, w, goerr.Wrap(err, "archive too large", goerr.V("limit", maxErr.Limit)), http.StatusRequestEntityTooLarge)
			return
		}
		logger.Error("Failed to read request body", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if len(body) == 0 {
		writeError(ctx, w, goerr.New("empty request body"), http.StatusBadRequest)
		return
	}

	id := uuid.NewString()
	logger = logger.With("analysis_id", id)
	logger.Info("Analyzing uploaded archive", "size_bytes", len(body))

	result, err := h.analyzerUC.AnalyzeBytes(ctxlog.With(ctx, logger), body)
	if err != nil {
		if goerr.HasTag(err, model.ErrTagCorruptArchive) {
			writeError(ctx, w, err, http.StatusBadRequest)
			return
		}
		logger.Error("Failed to analyze archive", "error", err)
		writeError(ctx, w, goerr.New("analysis failed", goerr.V("analysis_id", id)), http.StatusInternalServerError)
		return
	}

	if h.store != nil {
		h.dispatcher.Dispatch(ctxlog.With(ctx, logger), "save_result", func(ctx context.Context) error {
			_, err := h.store.Save(ctx, id+"_analysis.json", result)
			return err
		})
	}

	writeJSON(ctx, w, http.StatusOK, &analyzeResponse{
		ID:        id,
		Structure: result.Structure,
		Contents:  result.Contents,
	})
}
