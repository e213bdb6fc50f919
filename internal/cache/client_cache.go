package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pulsecheck/internal/model"
)

// ClientCache caches client-by-slug lookups on the survey access path
type ClientCache interface {
	GetBySlug(ctx context.Context, slug string) (*model.Client, error)
	SetBySlug(ctx context.Context, client *model.Client) error
	InvalidateSlug(ctx context.Context, slug string) error
}

type clientCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClientCache creates a new client cache
func NewClientCache(client *redis.Client) ClientCache {
	return &clientCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *clientCache) key(slug string) string {
	return fmt.Sprintf("client:slug:%s", slug)
}

func (c *clientCache) GetBySlug(ctx context.Context, slug string) (*model.Client, error) {
	data, err := c.client.Get(ctx, c.key(slug)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var client model.Client
	if err := json.Unmarshal([]byte(data), &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (c *clientCache) SetBySlug(ctx context.Context, client *model.Client) error {
	data, err := json.Marshal(client)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(client.Slug), data, c.ttl).Err()
}

func (c *clientCache) InvalidateSlug(ctx context.Context, slug string) error {
	return c.client.Del(ctx, c.key(slug)).Err()
}
