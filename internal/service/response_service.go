package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
)

var ErrSurveyNotActive = errors.New("survey not found or not active")

// ResponseService handles survey submissions and the admin raw-response views
type ResponseService struct {
	responseRepo repository.ResponseRepo
	clientSvc    *ClientService
	reportCache  cache.ReportCache
	broadcaster  Broadcaster
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo repository.ResponseRepo, clientSvc *ClientService, reportCache cache.ReportCache) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		clientSvc:    clientSvc,
		reportCache:  reportCache,
	}
}

// SetBroadcaster injects the live dashboard hub
func (s *ResponseService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit stores one response for an active client survey. The respondent
// identity comes from the SSO gateway, never from the request body.
func (s *ResponseService) Submit(ctx context.Context, slug string, response *model.Response, identity Identity) (string, error) {
	client, err := s.clientSvc.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if client == nil || client.SurveyStatus != model.SurveyStatusActive {
		return "", ErrSurveyNotActive
	}

	response.ID = ""
	response.ClientID = client.ID
	response.Email = identity.Email
	response.M365TenantID = identity.TenantID
	if identity.Authenticated() {
		response.AuthMethod = "m365"
	} else {
		response.AuthMethod = "anonymous"
	}

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return "", err
	}

	// Analytics are recomputed on next request
	_ = s.reportCache.Invalidate(ctx, client.ID)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToClient(client.ID, "response_received", map[string]interface{}{
			"responseId": response.ID,
			"department": response.Department,
			"roleLevel":  response.RoleLevel,
		})
	}

	return response.ID, nil
}

// ListByClient returns all raw responses for a client, newest first
func (s *ResponseService) ListByClient(ctx context.Context, clientID string) ([]model.Response, error) {
	return s.responseRepo.GetByClientID(ctx, clientID)
}

// csvHeader defines the export column order
var csvHeader = []string{
	"submittedAt", "email", "authMethod", "department", "roleLevel",
	"location", "tenure", "currentAiUsage", "aiToolsAwareness",
	"readinessToAdopt", "adoptionBarriers", "aiSkillsConfidence",
	"trainingInterest", "timeOnRepetitiveTasks", "completionTimeSeconds",
}

// ExportCSV renders a client's raw responses as CSV for download.
// Multi-select answers are joined with "; ".
func (s *ResponseService) ExportCSV(ctx context.Context, clientID string) ([]byte, error) {
	responses, err := s.responseRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range responses {
		record := []string{
			r.SubmittedAt.Format("2006-01-02 15:04:05"),
			r.Email,
			r.AuthMethod,
			r.Department,
			r.RoleLevel,
			r.Location,
			r.Tenure,
			r.CurrentAiUsage,
			strings.Join(r.AiToolsAwareness, "; "),
			r.ReadinessToAdopt,
			strings.Join(r.AdoptionBarriers, "; "),
			r.AiSkillsConfidence,
			r.TrainingInterest,
			r.TimeOnRepetitiveTasks,
			strconv.Itoa(r.CompletionSec),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
