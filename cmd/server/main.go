package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"videogames/backend/internal/catalog"
	"videogames/backend/internal/config"
	"videogames/backend/internal/database"
	"videogames/backend/internal/handler"
	"videogames/backend/internal/logger"
	"videogames/backend/internal/repository"
	"videogames/backend/internal/server"
	"videogames/backend/internal/telemetry"

	// Swagger imports
	_ "videogames/backend/docs" // registers the generated spec for /swagger
)

const shutdownGrace = 10 * time.Second

// @title           Videogames API
// @version         1.0
// @description     Local videogame store merged with the RAWG catalog.
// @host            localhost:3001
// @BasePath        /
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Error("Server stopped with error", zap.Error(err))
		_ = zlog.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	shutdownTelemetry, err := telemetry.Setup()
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Warn("Failed to stop telemetry", zap.Error(err))
		}
	}()

	// Never bind the port against a schema we could not migrate.
	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}

	if cfg.APIKey == "" {
		log.Warn("API_KEY is empty, catalog requests will be rejected")
	}

	h := handler.New(
		repository.NewGameRepository(db, log),
		repository.NewGenreRepository(db, log),
		catalog.NewClient(cfg.CatalogBaseURL, cfg.APIKey, log),
		log,
	)

	router, err := server.NewRouter(server.Deps{
		Config:   cfg,
		Handler:  h,
		Log:      log,
		Registry: prometheus.DefaultRegisterer,
		Gatherer: prometheus.DefaultGatherer,
	})
	if err != nil {
		return err
	}

	srv := server.New(cfg, server.Wrap(cfg, router))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server is running",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Environment),
			zap.String("swagger", "/swagger/index.html"))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
