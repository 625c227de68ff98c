// Package main is the entry point for the farm site server.
// It loads configuration, wires the content stores, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goldenhills/internal/config"
	"goldenhills/internal/contact"
	"goldenhills/internal/cosmic"
	"goldenhills/internal/handlers"
	"goldenhills/internal/render"
	"goldenhills/internal/router"
	"goldenhills/internal/store"
)

func main() {
	// Structured logger — text output works well both locally and in
	// container log collectors.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables (and .env locally).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"bucket", cfg.CosmicBucketSlug,
	)

	// Content API client. All site content comes from here.
	client := cosmic.New(cosmic.Config{
		BucketSlug:  cfg.CosmicBucketSlug,
		ReadKey:     cfg.CosmicReadKey,
		Environment: cfg.CosmicAPIEnv,
		BaseURL:     cfg.CosmicAPIURL,
	})

	// Initialize the HTML template renderer for site pages.
	// In dev mode, templates load assets from CDN; in production they
	// use compiled local files embedded in the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Initialize content stores. The blog store degrades listing
	// failures to empty pages so a content API hiccup never takes the
	// blog index down.
	productStore := store.NewProductStore(client)
	pageStore := store.NewPageStore(client)
	settingsStore := store.NewSettingsStore(client)
	authorStore := store.NewAuthorStore(client)
	blogStore := store.NewBlogStore(client, true)

	// Contact webhook notifier (optional — the form reports
	// unavailability when not configured).
	notifier := contact.NewNotifier(cfg.ContactWebhookURL)
	if !notifier.Configured() {
		slog.Warn("contact webhook not configured — form submissions disabled")
	}

	site := handlers.NewSite(renderer, productStore, pageStore, settingsStore, authorStore, blogStore, notifier, cfg.SiteURL)

	// Set up the Chi router with all middleware and routes.
	r := router.New(site)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
