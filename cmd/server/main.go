// Package main is the entry point for the recycling dashboard API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recyclehub/internal/config"
	"recyclehub/internal/infrastructure/api"
	v1 "recyclehub/internal/infrastructure/http/v1"
	"recyclehub/internal/notify"
	"recyclehub/internal/store"
	"recyclehub/internal/worker"
	"recyclehub/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Infow("starting recyclehub dashboard", "api_url", cfg.APIURL)

	// --- Backend client and store ---
	client := api.NewClient(api.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.APITimeout,
	}, log)

	feed := notify.NewFeed(cfg.NotificationBuffer)
	s := store.New(store.Config{
		API:      client,
		Notifier: notify.Fanout(feed, notify.NewLogNotifier(log)),
		Logger:   log,
	})

	// Failed loads are reported through the feed; the server starts regardless
	// and /health/ready stays unavailable until every entity has loaded.
	s.Init(ctx)
	log.Infow("initial load finished", "ready", s.Ready())

	refresher := worker.NewRefresher(s, cfg.RefreshInterval, log)
	go refresher.Run(ctx)

	// --- HTTP Server ---
	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: v1.NewHandler(v1.RouterConfig{
			Store:  s,
			Feed:   feed,
			Logger: log,
			Debug:  cfg.Development(),
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
