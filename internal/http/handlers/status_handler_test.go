package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyquote/internal/modules/catalog"
)

func getStatus(t *testing.T, extractorModel string) map[string]any {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/status", NewStatusHandler(catalog.NewSeeded(), extractorModel).Status)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestStatusEndpoint(t *testing.T) {
	body := getStatus(t, "")
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["extractor_configured"])
	assert.Equal(t, "not configured", body["extractor_model"])
	assert.Equal(t, float64(12), body["airports"])
	assert.Equal(t, float64(5), body["aircraft_classes"])

	body = getStatus(t, "gemini-2.0-flash")
	assert.Equal(t, true, body["extractor_configured"])
	assert.Equal(t, "gemini-2.0-flash", body["extractor_model"])
}
