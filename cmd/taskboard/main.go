package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sprintdesk/taskboard/internal/api"
	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/service"
	"github.com/sprintdesk/taskboard/internal/infrastructure/collaborator"
	"github.com/sprintdesk/taskboard/internal/infrastructure/config"
	"github.com/sprintdesk/taskboard/internal/infrastructure/memory"
	"github.com/sprintdesk/taskboard/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store := memory.NewStore()

	// State is process-lifetime only: seed the bootstrap admin so the
	// system is usable right after start.
	users := memory.NewUserRepository(store)
	authService := service.NewAuthService(users, cfg.JWTSecret, 24*time.Hour)
	if _, err := authService.Register(context.Background(), cfg.Seed.AdminName, cfg.Seed.AdminPassword, domain.RoleAdmin); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}
	log.Info().Str("name", cfg.Seed.AdminName).Msg("admin user seeded")

	generator := collaborator.NewClient(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Timeout, log)

	e := api.NewRouter(api.Deps{
		Store:     store,
		Generator: generator,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: e,
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shut down server")
	}
	log.Info().Msg("server stopped")
}
