package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nemeziz1010/pdfoutline/internal/api"
	"github.com/nemeziz1010/pdfoutline/internal/batch"
	"github.com/nemeziz1010/pdfoutline/internal/config"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	mode := "batch"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "batch":
		os.Exit(runBatch(cfg, log))
	case "serve":
		os.Exit(runServe(cfg, log))
	default:
		log.Error("unknown mode, want batch or serve", "mode", mode)
		os.Exit(1)
	}
}

// runBatch processes the input directory once. A signal cancels the
// worker pool; files already queued but unprocessed stay behind.
func runBatch(cfg config.Config, log *slog.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats := batch.NewStats(cfg.StatsWindow)
	sum, err := batch.NewRunner(cfg, stats, log).Run(ctx)
	if err != nil {
		log.Error("batch failed", "error", err)
		return 1
	}
	if sum.Found > 0 && sum.Processed == 0 {
		log.Error("no documents processed", "found", sum.Found, "failed", sum.Failed)
		return 1
	}
	return 0
}

func runServe(cfg config.Config, log *slog.Logger) int {
	stats := batch.NewStats(cfg.StatsWindow)
	srv := api.NewServer(cfg, stats, log)

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

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting pdfoutline", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return 1
	}
	return 0
}
