package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"pulsecheck/internal/service"
)

// AnalyticsHandler handles the admin reporting endpoints
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
	responseSvc  *service.ResponseService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService, responseSvc *service.ResponseService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
		responseSvc:  responseSvc,
	}
}

// GetReport handles GET /v1/admin/clients/{id}/analytics
func (h *AnalyticsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	report, err := h.analyticsSvc.GetReport(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch analytics")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// ListResponses handles GET /v1/admin/clients/{id}/responses
func (h *AnalyticsHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	responses, err := h.responseSvc.ListByClient(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch responses")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": responses})
}

// ExportResponses handles GET /v1/admin/clients/{id}/responses/export
func (h *AnalyticsHandler) ExportResponses(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	data, err := h.responseSvc.ExportCSV(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export responses")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "responses-"+clientID+".csv"))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
