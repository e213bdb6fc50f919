package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pulsecheck/internal/model"
)

// ReportCache handles Redis caching of computed analytics reports.
// Reports are recomputed from scratch on miss; entries are invalidated
// whenever a new response lands for the client.
type ReportCache interface {
	Get(ctx context.Context, clientID string) (*model.AnalyticsReport, error)
	Set(ctx context.Context, clientID string, report *model.AnalyticsReport) error
	Invalidate(ctx context.Context, clientID string) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
		ttl:    15 * time.Minute,
	}
}

func (c *reportCache) key(clientID string) string {
	return fmt.Sprintf("client:%s:report", clientID)
}

func (c *reportCache) Get(ctx context.Context, clientID string) (*model.AnalyticsReport, error) {
	data, err := c.client.Get(ctx, c.key(clientID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.AnalyticsReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *reportCache) Set(ctx context.Context, clientID string, report *model.AnalyticsReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(clientID), data, c.ttl).Err()
}

func (c *reportCache) Invalidate(ctx context.Context, clientID string) error {
	return c.client.Del(ctx, c.key(clientID)).Err()
}
