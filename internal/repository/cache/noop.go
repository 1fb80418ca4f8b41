package cache

import (
	"context"

	"github.com/you-humble/repair-workshop/internal/model"
)

// noopCache always misses. Used when Redis is not configured.
type noopCache struct{}

func NewNoopCache() noopCache { return noopCache{} }

func (noopCache) Summary(context.Context) (*model.RepairSummary, error) {
	return nil, model.ErrCacheMiss
}

func (noopCache) SetSummary(context.Context, *model.RepairSummary) error { return nil }

func (noopCache) Invalidate(context.Context) error { return nil }
