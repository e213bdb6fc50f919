package service

import (
	"context"
	"fmt"
	"strings"

	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
)

// Identity is the authenticated respondent forwarded by the SSO gateway.
// A zero value means an anonymous visitor.
type Identity struct {
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	TenantID string `json:"tenantId,omitempty"`
	ObjectID string `json:"objectId,omitempty"`
}

// Authenticated reports whether an identity carries a signed-in user
func (i Identity) Authenticated() bool {
	return i.Email != ""
}

// AccessService validates a respondent's access to a client survey.
// Validation is domain-first: the email domain allow-list is the primary
// gate, tenant IDs are an optional stricter check.
type AccessService struct {
	authSvc     *AuthService
	clientSvc   *ClientService
	sessionRepo repository.SessionRepo
}

// NewAccessService creates a new access service
func NewAccessService(authSvc *AuthService, clientSvc *ClientService, sessionRepo repository.SessionRepo) *AccessService {
	return &AccessService{
		authSvc:     authSvc,
		clientSvc:   clientSvc,
		sessionRepo: sessionRepo,
	}
}

func clientInfo(c *model.Client) *model.ClientInfo {
	return &model.ClientInfo{
		ID:   c.ID,
		Name: c.Name,
		Logo: c.LogoURL,
	}
}

// Validate resolves the client and decides whether the identity may take
// the survey. It never returns an error for a policy denial; errors are
// reserved for storage failures.
func (s *AccessService) Validate(ctx context.Context, slug string, identity Identity) (*model.AccessDecision, error) {
	isAdmin := identity.Authenticated() && s.authSvc.IsAdminIdentity(identity.Email)

	client, err := s.clientSvc.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	// Admins can preview draft and closed surveys; everyone else needs active
	if client != nil && !isAdmin && client.SurveyStatus != model.SurveyStatusActive {
		client = nil
	}
	if client == nil {
		return &model.AccessDecision{
			Allowed: false,
			Reason:  "Survey not found or not active",
		}, nil
	}

	if isAdmin {
		return &model.AccessDecision{
			Allowed:      true,
			RequiresAuth: false,
			IsAdmin:      true,
			SurveyStatus: client.SurveyStatus,
			Client:       clientInfo(client),
		}, nil
	}

	if !client.RequireM365Auth {
		return &model.AccessDecision{
			Allowed:      true,
			RequiresAuth: false,
			Client:       clientInfo(client),
		}, nil
	}

	if !identity.Authenticated() {
		return &model.AccessDecision{
			Allowed:      false,
			RequiresAuth: true,
			Reason:       "Authentication required",
			Client:       clientInfo(client),
		}, nil
	}

	if identity.TenantID == "" {
		return &model.AccessDecision{
			Allowed:      false,
			RequiresAuth: true,
			Reason:       "No tenant ID found in session",
		}, nil
	}

	if len(client.AllowedDomains) == 0 {
		return &model.AccessDecision{
			Allowed:      false,
			RequiresAuth: true,
			Reason:       "Survey authentication not yet configured. Please contact the administrator.",
		}, nil
	}

	emailDomain := ""
	if at := strings.LastIndex(identity.Email, "@"); at >= 0 {
		emailDomain = strings.ToLower(identity.Email[at+1:])
	}
	domainAllowed := false
	for _, d := range client.AllowedDomains {
		if strings.ToLower(d) == emailDomain {
			domainAllowed = true
			break
		}
	}
	if !domainAllowed {
		return &model.AccessDecision{
			Allowed:      false,
			RequiresAuth: true,
			Reason: fmt.Sprintf("Only users with @%s email addresses can access this survey.",
				strings.Join(client.AllowedDomains, " or @")),
		}, nil
	}

	// Tenant IDs are only enforced when explicitly configured
	if len(client.AllowedTenants) > 0 {
		tenantAllowed := false
		for _, t := range client.AllowedTenants {
			if t == identity.TenantID {
				tenantAllowed = true
				break
			}
		}
		if !tenantAllowed {
			return &model.AccessDecision{
				Allowed:      false,
				RequiresAuth: true,
				Reason:       "Your Microsoft 365 organization is not authorized to access this survey.",
			}, nil
		}
	}

	session := &model.SurveySession{
		ClientID:     client.ID,
		UserEmail:    identity.Email,
		UserName:     identity.Name,
		M365TenantID: identity.TenantID,
		M365ObjectID: identity.ObjectID,
	}
	if err := s.sessionRepo.Upsert(ctx, session); err != nil {
		return nil, err
	}

	return &model.AccessDecision{
		Allowed:      true,
		RequiresAuth: true,
		Client:       clientInfo(client),
	}, nil
}
