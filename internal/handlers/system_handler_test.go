package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benkhawiya/benkhawiya/internal/council"
)

func setupSystemHandler(t *testing.T) (*SystemHandler, *gin.Engine) {
	t.Helper()

	engine, err := council.NewEngine(nil)
	require.NoError(t, err)

	h := NewSystemHandler(engine, t.TempDir(), false, nil)
	r := gin.New()
	RegisterSystemRoutes(r, h)

	return h, r
}

func setupDegradedSystemHandler(t *testing.T) (*SystemHandler, *gin.Engine) {
	t.Helper()

	h := NewSystemHandler(nil, t.TempDir(), false, nil)
	r := gin.New()
	RegisterSystemRoutes(r, h)

	return h, r
}

func TestHealth_Healthy(t *testing.T) {
	_, r := setupSystemHandler(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "healthy", resp.Status)
	assert.True(t, resp.Components.CosmicEngine)
	assert.Equal(t, 42, resp.Components.PrinciplesLoaded)
}

func TestHealth_Degraded(t *testing.T) {
	_, r := setupDegradedSystemHandler(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	// Health itself always answers 200; the payload carries the state.
	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "degraded", resp.Status)
	assert.False(t, resp.Components.CosmicEngine)
	assert.Equal(t, 0, resp.Components.PrinciplesLoaded)
}

func TestAPIInfo_Operational(t *testing.T) {
	_, r := setupSystemHandler(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp InfoResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "operational", resp.Status)
	assert.True(t, resp.Features["council_reasoning"])
	assert.True(t, resp.Features["cosmic_principles"])
	assert.True(t, resp.Features["golden_ratio_mathematics"])
}

func TestAPIInfo_Degraded(t *testing.T) {
	_, r := setupDegradedSystemHandler(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp InfoResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "degraded", resp.Status)
}

func TestRoot_FallsBackToInfoWithoutTemplates(t *testing.T) {
	_, r := setupSystemHandler(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp InfoResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Benkhawiya AI - Cosmic Reasoning System", resp.System)
}

func TestFavicon_NotFound(t *testing.T) {
	_, r := setupSystemHandler(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/favicon.ico", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
