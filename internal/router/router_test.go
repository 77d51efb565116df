package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benkhawiya/benkhawiya/internal/config"
	"github.com/benkhawiya/benkhawiya/internal/council"
	"github.com/benkhawiya/benkhawiya/internal/observability/metrics"
)

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.TemplatesGlob = ""
	cfg.Server.StaticDir = ""
	return cfg
}

func TestSetupRouter_HealthAndMetrics(t *testing.T) {
	engine, err := council.NewEngine(nil)
	require.NoError(t, err)

	r := SetupRouter(testConfig(), engine, metrics.NewCollector(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/metrics", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestSetupRouter_EndToEndConsultation(t *testing.T) {
	engine, err := council.NewEngine(nil)
	require.NoError(t, err)

	r := SetupRouter(testConfig(), engine, nil, nil)

	body, err := json.Marshal(map[string]any{"question": "Should I change jobs?"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/council/consult", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var decision council.Decision
	err = json.Unmarshal(w.Body.Bytes(), &decision)
	require.NoError(t, err)
	assert.Len(t, decision.CouncilPerspectives, 4)
}

func TestSetupRouter_DegradedEngine(t *testing.T) {
	r := SetupRouter(testConfig(), nil, nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/principles", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

func TestSetupRouter_CORSPreflight(t *testing.T) {
	r := SetupRouter(testConfig(), nil, nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/principles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGinRouter_Lifecycle(t *testing.T) {
	cfg := testConfig()
	gr := NewGinRouter(cfg, SetupRouter(cfg, nil, nil, nil))

	assert.False(t, gr.IsRunning())
	assert.NotNil(t, gr.Engine())

	stats := gr.GetStats()
	assert.False(t, stats.Running)
	assert.Zero(t, stats.Uptime)

	// Shutdown on a never-started router is a no-op.
	assert.NoError(t, gr.Shutdown(t.Context()))
}
