package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/logging"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.New(cfg.Logging, cfg.Env, os.Stderr)
	if envErr != nil {
		log.Warn().Msg("no .env file found, using environment variables")
	}

	rng, err := generator.NewRand(cfg.Generator.Source, cfg.Generator.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid random source")
	}

	genService := service.NewGeneratorService(generator.New(rng), service.Defaults{
		Length:  cfg.Generator.DefaultLength,
		Letters: cfg.Generator.Letters,
		Numbers: cfg.Generator.Numbers,
		Symbols: cfg.Generator.Symbols,
	})
	genHandler := handler.NewGeneratorHandler(genService)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	limiter := newLimiter(ctx, cfg.RateLimit)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      newRouter(cfg, genHandler, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

// newLimiter uses Redis when configured and reachable, falling back to the
// in-process limiter otherwise.
func newLimiter(ctx context.Context, cfg config.RateLimitConfig) middleware.Limiter {
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, using in-memory rate limiter")
			_ = rdb.Close()
		} else if err := middleware.CheckRedisVersion(ctx, rdb); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unsupported, using in-memory rate limiter")
			_ = rdb.Close()
		} else {
			log.Info().Str("addr", cfg.RedisAddr).Msg("using redis rate limiter")
			return middleware.NewRedisLimiter(rdb, cfg.RequestsPerMinute(), cfg.Burst)
		}
	}
	return middleware.NewMemoryLimiter(ctx, cfg.RequestsPerSecond, cfg.Burst)
}
