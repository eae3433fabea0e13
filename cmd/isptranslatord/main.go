// Command isptranslatord serves the ISP-name translation API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/DailyRoutines/isptranslator"
	"github.com/DailyRoutines/isptranslator/cache"
	"github.com/DailyRoutines/isptranslator/config"
	"github.com/DailyRoutines/isptranslator/provider"
	"github.com/DailyRoutines/isptranslator/server"
	"github.com/DailyRoutines/isptranslator/store"
)

const (
	shutdownTimeout = 10 * time.Second
	drainTimeout    = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := store.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	edge, err := newEdgeCache(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create edge cache: %w", err)
	}

	var p isptranslator.Provider = provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
	})
	if cfg.RateLimitRPM > 0 {
		p = isptranslator.NewRateLimitedProvider(p, isptranslator.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimitRPM,
		})
	}

	translator := isptranslator.NewTranslator(db, p,
		isptranslator.WithEdgeCache(edge),
		isptranslator.WithLogger(logger),
	)

	srv := server.New(translator, logger, server.Config{AuthToken: cfg.AuthToken})
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening",
			zap.String("addr", httpServer.Addr),
			zap.String("version", isptranslator.FullVersion()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	err = g.Wait()

	// Responses have been delivered; let scheduled write-backs finish.
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if derr := translator.Drain(drainCtx); derr != nil {
		logger.Warn("abandoned background writes on shutdown", zap.Error(derr))
	}

	return err
}

func newEdgeCache(cfg *config.Config, logger *zap.Logger) (isptranslator.EdgeCache, error) {
	if cfg.RedisURL == "" {
		logger.Info("no REDIS_URL set, using in-memory edge cache")
		return cache.NewInMemoryCache(cfg.EdgeTTL), nil
	}

	edge, err := cache.NewRedisCache(cache.RedisConfig{
		URL: cfg.RedisURL,
		TTL: cfg.EdgeTTL,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("using Redis edge cache", zap.Int("ttl_seconds", cfg.EdgeTTL))
	return edge, nil
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.Set(level); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapLevel)
	zcfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	return zcfg.Build()
}
