package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/benkhawiya/benkhawiya/internal/council"
)

// systemVersion is reported by the info and health endpoints.
const systemVersion = "2.0.0"

// SystemHandler serves the landing page, API info, health and favicon.
type SystemHandler struct {
	engine    *council.Engine
	staticDir string
	templates bool
	logger    *logrus.Logger
}

// NewSystemHandler creates a system handler. templatesLoaded controls
// whether the landing page renders HTML or falls back to the API info.
func NewSystemHandler(engine *council.Engine, staticDir string, templatesLoaded bool, logger *logrus.Logger) *SystemHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &SystemHandler{
		engine:    engine,
		staticDir: staticDir,
		templates: templatesLoaded,
		logger:    logger,
	}
}

// Root godoc
// @Summary Web UI landing page
// @Tags system
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	if !h.templates {
		h.APIInfo(c)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":   "Benkhawiya AI - Cosmic Reasoning System",
		"version": systemVersion,
	})
}

// InfoResponse describes the running system.
type InfoResponse struct {
	System   string          `json:"system"`
	Version  string          `json:"version"`
	Status   string          `json:"status"`
	Features map[string]bool `json:"features"`
}

// APIInfo godoc
// @Summary API information
// @Tags system
// @Produce json
// @Success 200 {object} InfoResponse
// @Router /api [get]
func (h *SystemHandler) APIInfo(c *gin.Context) {
	status := "operational"
	if h.engine == nil {
		status = "degraded"
	}

	c.JSON(http.StatusOK, InfoResponse{
		System:  "Benkhawiya AI - Cosmic Reasoning System",
		Version: systemVersion,
		Status:  status,
		Features: map[string]bool{
			"council_reasoning":        true,
			"cosmic_principles":        true,
			"golden_ratio_mathematics": true,
		},
	})
}

// HealthComponents reports per-component health.
type HealthComponents struct {
	CosmicEngine     bool `json:"cosmic_engine"`
	PrinciplesLoaded int  `json:"principles_loaded"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status     string           `json:"status"`
	Components HealthComponents `json:"components"`
}

// Health godoc
// @Summary Health check
// @Description Reports healthy when the engine initialized, degraded otherwise
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "healthy"}
	if h.engine != nil {
		resp.Components.CosmicEngine = true
		resp.Components.PrinciplesLoaded = h.engine.Catalog().Len()
	} else {
		resp.Status = "degraded"
	}

	c.JSON(http.StatusOK, resp)
}

// Favicon serves the favicon when present under the static directory.
func (h *SystemHandler) Favicon(c *gin.Context) {
	path := filepath.Join(h.staticDir, "favicon.ico")
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "favicon not found"})
		return
	}
	c.File(path)
}

// RegisterSystemRoutes registers the landing, info, health and favicon routes.
func RegisterSystemRoutes(r gin.IRouter, h *SystemHandler) {
	r.GET("/", h.Root)
	r.GET("/api", h.APIInfo)
	r.GET("/health", h.Health)
	r.GET("/favicon.ico", h.Favicon)
}
