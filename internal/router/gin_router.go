package router

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/benkhawiya/benkhawiya/internal/config"
)

// GinRouter wraps the gin engine with HTTP server lifecycle management.
type GinRouter struct {
	engine    *gin.Engine
	server    *http.Server
	config    *config.Config
	log       *logrus.Logger
	mu        sync.RWMutex
	running   bool
	startedAt time.Time
}

// GinRouterOption configures the GinRouter.
type GinRouterOption func(*GinRouter)

// WithLogger sets a custom logger for the router.
func WithLogger(log *logrus.Logger) GinRouterOption {
	return func(r *GinRouter) {
		r.log = log
	}
}

// NewGinRouter creates a lifecycle wrapper around an already-configured engine.
func NewGinRouter(cfg *config.Config, engine *gin.Engine, opts ...GinRouterOption) *GinRouter {
	router := &GinRouter{
		engine: engine,
		config: cfg,
		log:    logrus.New(),
	}

	for _, opt := range opts {
		opt(router)
	}

	return router
}

// Engine returns the underlying gin engine.
func (r *GinRouter) Engine() *gin.Engine {
	return r.engine
}

// Start starts the HTTP server and blocks until it stops.
func (r *GinRouter) Start(addr string) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return fmt.Errorf("router is already running")
	}

	r.server = &http.Server{
		Addr:         addr,
		Handler:      r.engine,
		ReadTimeout:  r.config.Server.ReadTimeout,
		WriteTimeout: r.config.Server.WriteTimeout,
		IdleTimeout:  r.config.Server.IdleTimeout,
	}

	r.running = true
	r.startedAt = time.Now()
	r.mu.Unlock()

	r.log.WithField("addr", addr).Info("Starting HTTP server")

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (r *GinRouter) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	r.log.Info("Shutting down HTTP server...")

	if err := r.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	r.mu.Lock()
	r.running = false
	r.mu.Unlock()

	r.log.Info("HTTP server stopped")
	return nil
}

// IsRunning returns whether the server is currently running.
func (r *GinRouter) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// RouterStats contains router statistics.
type RouterStats struct {
	Running   bool
	StartedAt time.Time
	Uptime    time.Duration
}

// GetStats returns router statistics.
func (r *GinRouter) GetStats() RouterStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var uptime time.Duration
	if r.running {
		uptime = time.Since(r.startedAt)
	}

	return RouterStats{
		Running:   r.running,
		StartedAt: r.startedAt,
		Uptime:    uptime,
	}
}
