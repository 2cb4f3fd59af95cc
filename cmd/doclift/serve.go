package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doclift/doclift/internal/api"
	"github.com/doclift/doclift/internal/config"
	"github.com/doclift/doclift/internal/pipeline"
	"github.com/doclift/doclift/internal/sink"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the outline extraction HTTP service",
		Long: `Serve starts an HTTP API that accepts PDF uploads, queues them for
asynchronous extraction, and exposes job status and finished outlines.

Configuration comes from the environment:

  PORT              listen port (default 8080)
  DOCLIFT_API_KEY   bearer token for /api routes (required)
  WORKER_COUNT      extraction workers (default: CPU count)
  MAX_QUEUE_SIZE    pending job limit (default 100)
  MAX_UPLOAD_BYTES  upload size cap in bytes (default 50MB)
  RULES_FILE        heading rules file (YAML, optional)
  JOB_TTL           finished job retention (default 1h)
  SINK_URL          downstream outline sink (optional)
  SINK_API_KEY      sink bearer token`,
		RunE: runServeCmd,
	}
}

// runServeCmd starts the HTTP service and blocks until shutdown.
func runServeCmd(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	rules := config.DefaultRules()
	if cfg.RulesFile != "" {
		var err error
		rules, err = config.LoadRules(cfg.RulesFile)
		if err != nil {
			return fmt.Errorf("failed to load rules file %s: %w", cfg.RulesFile, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var snk *sink.Client
	if cfg.SinkURL != "" {
		snk = sink.NewClient(cfg.SinkURL, cfg.SinkAPIKey)
	}

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, rules, snk, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if snk != nil {
			snk.Close()
		}
	}()

	log.Info("starting doclift", "port", cfg.Port, "workers", cfg.WorkerCount)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
