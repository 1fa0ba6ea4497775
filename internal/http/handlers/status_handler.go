// README: Service status endpoint handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyquote/internal/modules/catalog"
)

type StatusHandler struct {
	cat            *catalog.Catalog
	extractorModel string // empty when only the rule-based path is configured
}

func NewStatusHandler(cat *catalog.Catalog, extractorModel string) *StatusHandler {
	return &StatusHandler{cat: cat, extractorModel: extractorModel}
}

// Status handles GET /api/status.
func (h *StatusHandler) Status(c *gin.Context) {
	model := h.extractorModel
	if model == "" {
		model = "not configured"
	}
	writeJSON(c, http.StatusOK, gin.H{
		"status":               "ok",
		"extractor_configured": h.extractorModel != "",
		"extractor_model":      model,
		"airports":             h.cat.AirportCount(),
		"aircraft_classes":     h.cat.AircraftCount(),
	})
}
