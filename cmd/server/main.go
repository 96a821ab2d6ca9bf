package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/football-dashboard/internal/api"
	"github.com/dom/football-dashboard/internal/config"
	"github.com/dom/football-dashboard/internal/dataset"
	"github.com/dom/football-dashboard/internal/logger"
	"github.com/dom/football-dashboard/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("failed to load config: %v", err)
	}

	log := logger.Init(cfg.LogLevel, cfg.IsDevelopment())

	// Load the dataset once before serving; every request reads this table.
	table, err := dataset.Load(cfg.DataPath)
	if err != nil {
		log.Fatalf("failed to load player dataset: %v", err)
	}

	services := service.NewServices(table)

	router := api.NewRouter(services, cfg)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Info("server stopped")
}
