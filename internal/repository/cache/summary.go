package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you-humble/repair-workshop/internal/model"
)

const summaryKey = "repair-workshop:repairs:summary"

type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSummaryCache(client *redis.Client, ttl time.Duration) *summaryCache {
	return &summaryCache{client: client, ttl: ttl}
}

func (c *summaryCache) Summary(ctx context.Context) (*model.RepairSummary, error) {
	data, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCacheMiss
		}
		return nil, err
	}

	var s model.RepairSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

func (c *summaryCache) SetSummary(ctx context.Context, s *model.RepairSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, summaryKey, data, c.ttl).Err()
}

func (c *summaryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, summaryKey).Err()
}
