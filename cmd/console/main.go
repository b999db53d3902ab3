package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/api"
	"github.com/globalcargo/cargo-console/internal/api/handler"
	"github.com/globalcargo/cargo-console/internal/api/middleware"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/core/service"
	mongostore "github.com/globalcargo/cargo-console/internal/infrastructure/db/mongo"
	redisstore "github.com/globalcargo/cargo-console/internal/infrastructure/db/redis"
	"github.com/globalcargo/cargo-console/internal/infrastructure/gateway"
	"github.com/globalcargo/cargo-console/internal/infrastructure/session"
	"github.com/globalcargo/cargo-console/internal/pkg/config"
	"github.com/globalcargo/cargo-console/internal/pkg/validation"
	"github.com/globalcargo/cargo-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "cargo-console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Session.Storage).Msg("session storage unavailable")
	}
	defer closeStorage()

	client := gateway.New(gateway.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, logger.For("gateway"))
	auth := service.NewAuthService(gateway.NewAuth(client), logger.For("auth"))
	sessions := middleware.NewSessions(storage, cfg.Security.CookieSecure, logger.For("session"))

	e := api.NewRouter(api.Deps{
		Client:    client,
		Auth:      auth,
		Sessions:  sessions,
		Validator: validation.New(),
		Log:       log,
		CSRF:      cfg.Security.CSRFEnabled,
		Readiness: map[string]handler.Pinger{"sessions": sessions},
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("api", cfg.API.BaseURL).
			Str("sessions", cfg.Session.Storage).
			Msg("cargo console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStorage connects the configured session backend. The returned func
// releases it.
func openStorage(ctx context.Context, cfg *config.Config) (ports.Storage, func(), error) {
	noop := func() {}
	closer := func(log zerolog.Logger, c interface{ Close(context.Context) error }) func() {
		return func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := c.Close(closeCtx); err != nil {
				log.Warn().Err(err).Msg("session storage not closed")
			}
		}
	}

	switch cfg.Session.Storage {
	case config.StorageRedis:
		s, err := redisstore.Open(ctx, redisstore.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return nil, noop, err
		}
		return s, closer(logger.For("redis"), s), nil
	case config.StorageMongo:
		s, err := mongostore.Open(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, noop, err
		}
		return s, closer(logger.For("mongo"), s), nil
	default:
		s, err := session.NewFileStorage(cfg.Session.Dir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	}
}
