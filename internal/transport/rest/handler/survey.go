package handler

import (
	"encoding/json"
	"net/http"

	"pulsecheck/internal/model"
	"pulsecheck/internal/service"
	"pulsecheck/internal/survey"
)

// SurveyHandler handles the public respondent-facing endpoints
type SurveyHandler struct {
	clientSvc   *service.ClientService
	accessSvc   *service.AccessService
	responseSvc *service.ResponseService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(clientSvc *service.ClientService, accessSvc *service.AccessService, responseSvc *service.ResponseService) *SurveyHandler {
	return &SurveyHandler{
		clientSvc:   clientSvc,
		accessSvc:   accessSvc,
		responseSvc: responseSvc,
	}
}

// ClientInfo handles GET /v1/survey/client-info?slug=...
// Returns branding plus the questionnaire for the survey UI.
func (h *SurveyHandler) ClientInfo(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "client slug is required")
		return
	}

	client, err := h.clientSvc.GetBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if client == nil || client.SurveyStatus != model.SurveyStatusActive {
		writeError(w, http.StatusNotFound, "survey not found or not active")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"client": map[string]interface{}{
			"name":            client.Name,
			"logoUrl":         client.LogoURL,
			"primaryColour":   client.PrimaryC,
			"secondaryColour": client.SecondaryC,
		},
		"sections": survey.Sections(client),
	})
}

// ValidateAccessRequest is the request body for access validation
type ValidateAccessRequest struct {
	ClientSlug string           `json:"clientSlug"`
	Identity   service.Identity `json:"identity"`
}

// ValidateAccess handles POST /v1/survey/validate-access
func (h *SurveyHandler) ValidateAccess(w http.ResponseWriter, r *http.Request) {
	var req ValidateAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ClientSlug == "" {
		writeError(w, http.StatusBadRequest, "client slug is required")
		return
	}

	decision, err := h.accessSvc.Validate(r.Context(), req.ClientSlug, req.Identity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusOK
	if !decision.Allowed {
		if decision.Client == nil && !decision.RequiresAuth {
			status = http.StatusNotFound
		} else if decision.RequiresAuth && decision.Reason != "Authentication required" {
			status = http.StatusForbidden
		}
	}
	writeJSON(w, status, decision)
}

// SubmitRequest is the request body for a survey submission
type SubmitRequest struct {
	Slug           string           `json:"slug"`
	Response       model.Response   `json:"responses"`
	CompletionTime int              `json:"completionTime"`
	Identity       service.Identity `json:"identity"`
}

// Submit handles POST /v1/survey/submit
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Response.CompletionSec = req.CompletionTime
	id, err := h.responseSvc.Submit(r.Context(), req.Slug, &req.Response, req.Identity)
	if err == service.ErrSurveyNotActive {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save response")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"responseId": id,
	})
}
