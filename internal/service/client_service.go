package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrMissingFields  = errors.New("client name and slug are required")
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// ClientService handles tenant CRUD
type ClientService struct {
	clientRepo  repository.ClientRepo
	clientCache cache.ClientCache
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepo, clientCache cache.ClientCache) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		clientCache: clientCache,
	}
}

// Slugify derives a URL slug from a client name
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// Create registers a new tenant, defaulting the slug from the name
func (s *ClientService) Create(ctx context.Context, client *model.Client) (string, error) {
	if client.Name == "" {
		return "", ErrMissingFields
	}
	if client.Slug == "" {
		client.Slug = Slugify(client.Name)
	}
	if client.Slug == "" {
		return "", ErrMissingFields
	}
	return s.clientRepo.Create(ctx, client)
}

// GetByID fetches one client
func (s *ClientService) GetByID(ctx context.Context, id string) (*model.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

// GetBySlug fetches one client by slug, via cache
func (s *ClientService) GetBySlug(ctx context.Context, slug string) (*model.Client, error) {
	if cached, err := s.clientCache.GetBySlug(ctx, slug); err == nil && cached != nil {
		return cached, nil
	}

	client, err := s.clientRepo.GetBySlug(ctx, slug)
	if err != nil || client == nil {
		return client, err
	}
	// Best effort; lookups still work if redis is down
	_ = s.clientCache.SetBySlug(ctx, client)
	return client, nil
}

// List returns all tenants, newest first
func (s *ClientService) List(ctx context.Context) ([]*model.Client, error) {
	return s.clientRepo.List(ctx)
}

// Update persists changes and drops the stale slug cache entry
func (s *ClientService) Update(ctx context.Context, client *model.Client) error {
	existing, err := s.clientRepo.GetByID(ctx, client.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrClientNotFound
	}

	// Slug is immutable after creation; survey links embed it
	client.Slug = existing.Slug

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return err
	}
	return s.clientCache.InvalidateSlug(ctx, existing.Slug)
}

// Delete removes a tenant
func (s *ClientService) Delete(ctx context.Context, id string) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.clientCache.InvalidateSlug(ctx, client.Slug)
}
