package service

import (
	"context"

	"pulsecheck/internal/analytics"
	"pulsecheck/internal/cache"
	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
)

// AnalyticsService serves computed readiness reports per client. The
// computation itself lives in the analytics package and is pure; this
// service only fetches the batch and manages the cache in front of it.
type AnalyticsService struct {
	responseRepo repository.ResponseRepo
	reportCache  cache.ReportCache
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(responseRepo repository.ResponseRepo, reportCache cache.ReportCache) *AnalyticsService {
	return &AnalyticsService{
		responseRepo: responseRepo,
		reportCache:  reportCache,
	}
}

// GetReport returns the analytics report for a client, recomputing from the
// full response batch on cache miss. A client with no responses yet gets
// the distinct empty shape (interface{} return covers both).
func (s *AnalyticsService) GetReport(ctx context.Context, clientID string) (interface{}, error) {
	if cached, err := s.reportCache.Get(ctx, clientID); err == nil && cached != nil {
		return cached, nil
	}

	responses, err := s.responseRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	report := analytics.Build(responses)
	if report == nil {
		return &model.EmptyReport{TotalResponses: 0}, nil
	}

	// Cache failures are not fatal; the report was already computed
	_ = s.reportCache.Set(ctx, clientID, report)
	return report, nil
}
