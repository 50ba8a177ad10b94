// Package redisadapter caches the campaign collection in Redis so list
// displays stay cheap between lifecycle transitions.
package redisadapter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-pulse/internal/core/domain"
)

const listKey = "campaign-pulse:campaigns:list"

// CampaignCache implements port.CampaignCache on a Redis client. All
// failures degrade to cache misses; callers fall back to the repository.
type CampaignCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCampaignCache creates a cache with the given TTL for the campaign
// collection.
func NewCampaignCache(client *redis.Client, ttl time.Duration) *CampaignCache {
	return &CampaignCache{client: client, ttl: ttl}
}

// GetList returns the cached campaign collection and whether it was
// present and decodable.
func (c *CampaignCache) GetList(ctx context.Context) ([]domain.Campaign, bool) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		return nil, false
	}
	var campaigns []domain.Campaign
	if err := json.Unmarshal(raw, &campaigns); err != nil {
		return nil, false
	}
	return campaigns, true
}

// SetList stores the campaign collection under the list key.
func (c *CampaignCache) SetList(ctx context.Context, campaigns []domain.Campaign) error {
	raw, err := json.Marshal(campaigns)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listKey, raw, c.ttl).Err()
}

// Invalidate drops the cached collection.
func (c *CampaignCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listKey).Err()
}

// NoopCache satisfies port.CampaignCache when Redis is not configured.
// Every read is a miss and every write succeeds.
type NoopCache struct{}

func (NoopCache) GetList(context.Context) ([]domain.Campaign, bool) { return nil, false }

func (NoopCache) SetList(context.Context, []domain.Campaign) error { return nil }

func (NoopCache) Invalidate(context.Context) error { return nil }
