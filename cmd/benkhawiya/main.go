package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/benkhawiya/benkhawiya/internal/config"
	"github.com/benkhawiya/benkhawiya/internal/council"
	"github.com/benkhawiya/benkhawiya/internal/observability/metrics"
	"github.com/benkhawiya/benkhawiya/internal/router"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.Monitoring.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	gin.SetMode(cfg.Server.Mode)

	logger.Info("Initializing Benkhawiya cosmic reasoning system")

	// A failed engine init is not fatal: the server comes up degraded,
	// health reports it and the council endpoints answer 503.
	engine, err := council.NewEngine(logger)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize cosmic engine, serving degraded")
		engine = nil
	}

	var collector *metrics.Collector
	if cfg.Monitoring.MetricsEnabled {
		collector = metrics.NewCollector()
	}

	engineRouter := router.SetupRouter(cfg, engine, collector, logger)
	srv := router.NewGinRouter(cfg, engineRouter, router.WithLogger(logger))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Server.Host + ":" + cfg.Server.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.WithError(err).Fatal("Server error")
		}
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("Benkhawiya system shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.WithError(err).Error("Graceful shutdown failed")
		}
	}
}
