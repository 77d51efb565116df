package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/benkhawiya/benkhawiya/internal/council"
	"github.com/benkhawiya/benkhawiya/internal/observability/metrics"
)

// goldenStageMax bounds the progression stage accepted at the boundary.
const goldenStageMax = 100

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CouncilHandler handles cosmic reasoning HTTP requests.
type CouncilHandler struct {
	engine    *council.Engine
	collector *metrics.Collector
	logger    *logrus.Logger
}

// NewCouncilHandler creates a new council handler. A nil engine puts every
// endpoint into the unavailable-service path; a nil collector disables
// domain counters.
func NewCouncilHandler(engine *council.Engine, collector *metrics.Collector, logger *logrus.Logger) *CouncilHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &CouncilHandler{
		engine:    engine,
		collector: collector,
		logger:    logger,
	}
}

// requireEngine writes a 503 and returns false when the engine failed to
// initialize at startup.
func (h *CouncilHandler) requireEngine(c *gin.Context) bool {
	if h.engine == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "cosmic reasoning engine unavailable"})
		return false
	}
	return true
}

// PrinciplesResponse lists catalog principles, optionally filtered.
type PrinciplesResponse struct {
	Count      int                 `json:"count"`
	Category   string              `json:"category"`
	Principles []council.Principle `json:"principles"`
}

// ListPrinciples godoc
// @Summary List cosmic principles
// @Description List the 42 principles, optionally filtered by council category
// @Tags principles
// @Produce json
// @Param category query string false "Category filter (nurture|truth|vision|structure)"
// @Success 200 {object} PrinciplesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /principles [get]
func (h *CouncilHandler) ListPrinciples(c *gin.Context) {
	if !h.requireEngine(c) {
		return
	}

	resp := PrinciplesResponse{Category: "all"}

	if raw := c.Query("category"); raw != "" {
		cat, err := council.ParseCategory(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		resp.Category = string(cat)
		resp.Principles = h.engine.Catalog().ByCategory(cat)
	} else {
		resp.Principles = h.engine.Catalog().Principles()
	}
	resp.Count = len(resp.Principles)

	if h.collector != nil {
		h.collector.PrinciplesServed.Inc()
	}

	c.JSON(http.StatusOK, resp)
}

// ConsultRequest is the council consultation request body.
type ConsultRequest struct {
	Question string         `json:"question" binding:"required"`
	Context  map[string]any `json:"context"`
}

// ConsultCouncil godoc
// @Summary Consult the council
// @Description Run all four category analyses and return the integrated decision
// @Tags council
// @Accept json
// @Produce json
// @Param request body ConsultRequest true "Question and optional context"
// @Success 200 {object} council.Decision
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /council/consult [post]
func (h *CouncilHandler) ConsultCouncil(c *gin.Context) {
	if !h.requireEngine(c) {
		return
	}

	var req ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	decision, err := h.engine.Consult(c.Request.Context(), req.Question, req.Context)
	if err != nil {
		if h.collector != nil {
			h.collector.ConsultationFailures.Inc()
		}
		if errors.Is(err, council.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.WithError(err).Error("Council consultation failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("cosmic reasoning failed: %v", err)})
		return
	}

	if h.collector != nil {
		h.collector.ConsultationsTotal.Inc()
	}
	h.logger.WithField("question", summarizeQuestion(req.Question)).Info("Council consultation completed")

	c.JSON(http.StatusOK, decision)
}

// GoldenRatioResponse is the progression calculation response.
type GoldenRatioResponse struct {
	DevelopmentalStage int     `json:"developmental_stage"`
	GoldenRatio        float64 `json:"golden_ratio"`
	ProgressionValue   float64 `json:"progression_value"`
	Description        string  `json:"description"`
}

// GoldenRatioProgression godoc
// @Summary Calculate golden ratio progression
// @Description Compute φⁿ for a developmental stage n in [0,100]
// @Tags mathematics
// @Produce json
// @Param n path int true "Developmental stage (0-100)"
// @Success 200 {object} GoldenRatioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /mathematics/golden-ratio/{n} [get]
func (h *CouncilHandler) GoldenRatioProgression(c *gin.Context) {
	if !h.requireEngine(c) {
		return
	}

	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "n must be an integer"})
		return
	}
	if n < 0 || n > goldenStageMax {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "n must be between 0 and 100"})
		return
	}

	if h.collector != nil {
		h.collector.GoldenProgressions.Inc()
	}

	c.JSON(http.StatusOK, GoldenRatioResponse{
		DevelopmentalStage: n,
		GoldenRatio:        h.engine.Phi(),
		ProgressionValue:   h.engine.GoldenProgression(n),
		Description:        fmt.Sprintf("Cosmic developmental progression at stage %d", n),
	})
}

// summarizeQuestion trims long questions for log lines.
func summarizeQuestion(q string) string {
	const limit = 50
	r := []rune(q)
	if len(r) > limit {
		return string(r[:limit]) + "..."
	}
	return q
}

// RegisterCouncilRoutes registers the cosmic reasoning routes.
func RegisterCouncilRoutes(r gin.IRouter, h *CouncilHandler) {
	r.GET("/principles", h.ListPrinciples)
	r.POST("/council/consult", h.ConsultCouncil)
	r.GET("/mathematics/golden-ratio/:n", h.GoldenRatioProgression)
}
