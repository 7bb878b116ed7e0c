package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/domain/interfaces"
	"github.com/m-mizutani/zipscope/pkg/utils/async"
)

// config holds internal HTTP server configuration
type config struct {
	addr          string
	maxUploadSize int64
	store         interfaces.ResultStore
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithMaxUploadSize limits the size of an uploaded archive in bytes
func WithMaxUploadSize(size int64) Option {
	return func(c *config) {
		c.maxUploadSize = size
	}
}

// WithResultStore saves every successful analysis to store in the background
func WithResultStore(store interfaces.ResultStore) Option {
	return func(c *config) {
		c.store = store
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	dispatcher *async.Dispatcher
}

// Shutdown stops accepting requests and waits for pending result saves
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.Server.Shutdown(ctx); err != nil {
		return goerr.Wrap(err, "failed to shutdown HTTP server")
	}
	return s.dispatcher.Wait(ctx)
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	analyzerUC interfaces.AnalyzerUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:          "localhost:8080",
		maxUploadSize: 64 << 20,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	// Archive analysis
	dispatcher := &async.Dispatcher{}
	analyzeHandler := NewAnalyzeHandler(analyzerUC, cfg.maxUploadSize, cfg.store, dispatcher)
	router.Post("/analyze", analyzeHandler.Handle)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		dispatcher: dispatcher,
	}

	return server, nil
}
