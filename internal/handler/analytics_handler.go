package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/service"
)

// AnalyticsHandler serves the admin analytics overview.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler with the given service.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview handles GET /api/analytics (admin only).
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireAdmin(w, r) {
		return
	}

	overview, err := h.analyticsService.Overview(r.Context())
	if err != nil {
		slog.Error("analytics overview failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "analytics_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(overview)
}
