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

	"github.com/lysyi3m/feed-norm/app/api"
	"github.com/lysyi3m/feed-norm/app/cfg"
	"github.com/lysyi3m/feed-norm/app/feed"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting Feed Norm server", "version", appCfg.Version)

	// Core pipeline components
	fetcher := feed.NewFetcher(appCfg.UserAgent, time.Duration(appCfg.FetchTimeout)*time.Second)
	extractor := feed.NewExtractor()
	processor := feed.NewProcessor(fetcher, extractor, appCfg.MaxItems)

	// HTTP server
	handler := api.NewHandler(processor, fetcher, feed.NewContentExtractor(), feed.NewSanitizer())
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		slog.Info("Endpoints available",
			"feed", fmt.Sprintf("http://localhost:%s/feed?url=<feed-url>", appCfg.Port),
			"extract", fmt.Sprintf("http://localhost:%s/extract?url=<page-url>", appCfg.Port),
			"health", fmt.Sprintf("http://localhost:%s/health", appCfg.Port))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Feed Norm server shutdown complete")
}
