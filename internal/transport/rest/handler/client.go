package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
	"pulsecheck/internal/service"
)

// ClientHandler handles admin tenant management endpoints
type ClientHandler struct {
	clientSvc *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientSvc *service.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

// ClientRequest is the request body for creating or updating a client
type ClientRequest struct {
	ClientName       string   `json:"clientName"`
	ClientSlug       string   `json:"clientSlug"`
	LogoURL          string   `json:"logoUrl"`
	PrimaryColour    string   `json:"primaryColour"`
	SecondaryColour  string   `json:"secondaryColour"`
	Departments      []string `json:"departments"`
	Locations        []string `json:"locations"`
	SurveyStatus     string   `json:"surveyStatus"`
	RequireM365Auth  bool     `json:"requireM365Auth"`
	AllowedTenantIDs []string `json:"allowedTenantIds"`
	AllowedDomains   []string `json:"allowedDomains"`
}

func (req *ClientRequest) toModel() *model.Client {
	return &model.Client{
		Name:            req.ClientName,
		Slug:            req.ClientSlug,
		LogoURL:         req.LogoURL,
		PrimaryC:        req.PrimaryColour,
		SecondaryC:      req.SecondaryColour,
		Departments:     req.Departments,
		Locations:       req.Locations,
		SurveyStatus:    req.SurveyStatus,
		RequireM365Auth: req.RequireM365Auth,
		AllowedTenants:  req.AllowedTenantIDs,
		AllowedDomains:  req.AllowedDomains,
	}
}

// Create handles POST /v1/admin/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	client := req.toModel()
	id, err := h.clientSvc.Create(r.Context(), client)
	if err == service.ErrMissingFields || err == repository.ErrSlugTaken {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	client.ID = id
	writeJSON(w, http.StatusCreated, map[string]interface{}{"client": client})
}

// List handles GET /v1/admin/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"clients": clients})
}

// Get handles GET /v1/admin/clients/{id}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	client, err := h.clientSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if client == nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"client": client})
}

// Update handles PATCH /v1/admin/clients/{id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	client := req.toModel()
	client.ID = id

	err := h.clientSvc.Update(r.Context(), client)
	if err == service.ErrClientNotFound {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"client": client})
}

// Delete handles DELETE /v1/admin/clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.clientSvc.Delete(r.Context(), id)
	if err == service.ErrClientNotFound {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
