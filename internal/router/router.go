package router

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/benkhawiya/benkhawiya/internal/config"
	"github.com/benkhawiya/benkhawiya/internal/council"
	"github.com/benkhawiya/benkhawiya/internal/handlers"
	"github.com/benkhawiya/benkhawiya/internal/middleware"
	"github.com/benkhawiya/benkhawiya/internal/observability/metrics"
)

// SetupRouter creates and configures the main HTTP router. A nil engine
// is valid: the council endpoints answer 503 and health reports degraded.
func SetupRouter(cfg *config.Config, engine *council.Engine, collector *metrics.Collector, log *logrus.Logger) *gin.Engine {
	if log == nil {
		log = logrus.New()
	}

	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if cfg.Server.RequestLogging {
		r.Use(middleware.RequestLogger(log))
	}
	if collector != nil {
		r.Use(middleware.Metrics(collector))
	}
	if cfg.Server.EnableCORS {
		r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		r.Use(limiter.Middleware())
	}

	// Landing page templates are optional; the root route falls back to
	// the API info payload when none are found.
	templatesLoaded := false
	if cfg.Server.TemplatesGlob != "" {
		if matches, err := filepath.Glob(cfg.Server.TemplatesGlob); err == nil && len(matches) > 0 {
			r.LoadHTMLGlob(cfg.Server.TemplatesGlob)
			templatesLoaded = true
		}
	}

	systemHandler := handlers.NewSystemHandler(engine, cfg.Server.StaticDir, templatesLoaded, log)
	handlers.RegisterSystemRoutes(r, systemHandler)

	councilHandler := handlers.NewCouncilHandler(engine, collector, log)
	handlers.RegisterCouncilRoutes(r, councilHandler)

	if collector != nil && cfg.Monitoring.MetricsEnabled {
		r.GET(cfg.Monitoring.MetricsPath, gin.WrapH(collector.Handler()))
	}

	return r
}
