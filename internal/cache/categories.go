package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Skotchmaster/clothing_store/internal/aggregate"
	"github.com/Skotchmaster/clothing_store/internal/query"
)

const categoriesVersionKey = "categories:version"

// CategoryCache stores category summary pages under a version counter.
// Invalidate bumps the counter, so stale pages are never read again and expire on their own.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	return &CategoryCache{client: client, ttl: ttl}
}

func (c *CategoryCache) key(ctx context.Context, p query.Page) (string, error) {
	version, err := c.client.Get(ctx, categoriesVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("categories:v%d:page:%d:per:%d", version, p.Page, p.PerPage), nil
}

func (c *CategoryCache) Get(ctx context.Context, p query.Page) (*aggregate.Facet, bool, error) {
	key, err := c.key(ctx, p)
	if err != nil {
		return nil, false, err
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var facet aggregate.Facet
	if err := json.Unmarshal(raw, &facet); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return &facet, true, nil
}

func (c *CategoryCache) Set(ctx context.Context, p query.Page, facet aggregate.Facet) error {
	key, err := c.key(ctx, p)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(facet)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func (c *CategoryCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, categoriesVersionKey).Err()
}
