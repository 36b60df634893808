package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"

	"filmrank/internal/clients"
	"filmrank/internal/config"
	"filmrank/internal/domain"
	"filmrank/internal/handler"
	"filmrank/internal/storage"
	"filmrank/internal/views"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	cfg       *config.Config
	server    *fiber.App
	movieRepo domain.MovieRepository
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	app := &App{
		cfg:       cfg,
		movieRepo: storage.NewMovieRepository(store),
	}
	app.setupHTTPServer()

	return app, nil
}

func openStore(cfg *config.Config) (*bolthold.Store, error) {
	store, err := bolthold.Open(cfg.DBPath(), cfg.DBFilePermissions, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return store, nil
}

func (a *App) setupHTTPServer() {
	searcher := clients.NewTMDBClient(a.cfg.TMDBBaseURL, a.cfg.TMDBImageBaseURL, a.cfg.TMDBAPIKey, a.cfg.HTTPTimeout)

	server := fiber.New(fiber.Config{
		Views:                 views.NewEngine(),
		DisableStartupMessage: true,
	})
	server.Use(handler.RequestLogger())
	handler.NewHTTPHandler(a.movieRepo, searcher).RegisterRoutes(server)

	a.server = server
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.startServer()

	return a.waitForShutdown(ctx, cancel)
}

func (a *App) startServer() {
	log.WithFields(log.Fields{
		"component": "server",
		"address":   a.cfg.ServerPort,
	}).Info("http server listening")

	if err := a.server.Listen(a.cfg.ServerPort); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Fatal("http server failed to start")
	}
}

func (a *App) waitForShutdown(ctx context.Context, cancel context.CancelFunc) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	}

	cancel()
	return a.shutdown()
}

func (a *App) shutdown() error {
	log.Info("graceful shutdown started")

	if err := a.server.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
	}

	if err := a.movieRepo.Close(); err != nil {
		log.WithFields(log.Fields{
			"component": "database",
			"error":     err,
		}).Error("database connection close failed")
		return err
	}

	log.Info("graceful shutdown completed")
	return nil
}
