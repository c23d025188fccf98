package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/prwerk/seoscore/internal/adapters/enrichment"
	"github.com/prwerk/seoscore/internal/adapters/http/api"
	"github.com/prwerk/seoscore/internal/adapters/http/swagger"
	app "github.com/prwerk/seoscore/internal/app"
	"github.com/prwerk/seoscore/internal/config"
	"github.com/prwerk/seoscore/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Local development convenience; missing .env files are fine.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	opts := []app.Option{
		app.WithLogger(log),
		app.WithMaxKeywords(cfg.MaxKeywords),
		app.WithEnrichmentTimeout(time.Duration(cfg.EnrichmentTimeoutMS) * time.Millisecond),
	}

	// Without an API key the engine runs with fallback enrichment only.
	if cfg.OpenAIKey != "" {
		enricher, err := enrichment.New(enrichment.Config{
			APIKey: cfg.OpenAIKey,
			Model:  cfg.OpenAIModel,
			RetryConfig: enrichment.RetryConfig{
				MaxAttempts:  cfg.EnrichmentRetryAttempts,
				InitialDelay: time.Duration(cfg.EnrichmentRetryDelayMS) * time.Millisecond,
			},
			BreakerEnabled: cfg.EnrichmentBreakerEnabled,
		})
		if err != nil {
			os.Stderr.WriteString("failed to create enrichment client: " + err.Error() + "\n")
			return
		}
		opts = append(opts, app.WithEnricher(enricher))
	} else {
		log.Warn(ctx, "no OpenAI key configured; semantic enrichment disabled")
	}

	coordinator := app.New(opts...)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// API docs under /api-docs.
	swagger.Register(ctx, mux)

	apiServer := api.NewServer(coordinator, coordinator)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
