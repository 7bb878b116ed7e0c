package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipscope/pkg/cli/config"
	controller "github.com/m-mizutani/zipscope/pkg/controller/http"
	"github.com/m-mizutani/zipscope/pkg/infra/storage"
	"github.com/m-mizutani/zipscope/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg     config.Server
		extractionCfg config.Extraction
	)

	flags := append(serverCfg.Flags(), extractionCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server accepting archives on POST /analyze",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			exts, err := extractionCfg.ExtensionSet()
			if err != nil {
				return err
			}

			logger.Info("Starting zipscope server",
				slog.String("addr", serverCfg.Addr),
				slog.Int64("max_upload_size", serverCfg.MaxUploadSize),
				slog.Int("extensions", len(exts)),
				slog.String("save_dir", serverCfg.SaveDir),
			)

			// Create use cases
			analyzerUC := usecase.NewAnalyzer(usecase.WithExtensions(exts))

			opts := []controller.Option{
				controller.WithAddr(serverCfg.Addr),
				controller.WithMaxUploadSize(serverCfg.MaxUploadSize),
			}
			if serverCfg.SaveDir != "" {
				opts = append(opts, controller.WithResultStore(storage.NewFileStore(serverCfg.SaveDir)))
			}

			// Create HTTP server with options
			server, err := controller.NewServer(ctx, analyzerUC, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
