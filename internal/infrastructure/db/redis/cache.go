package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/serenispa/reservation-system/internal/api/metrics"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

const (
	summaryKey = "dashboard:summary"
	summaryTTL = 60 * time.Second
)

// SummaryCache stores the dashboard snapshot in Redis with a short TTL.
type SummaryCache struct {
	client *redis.Client
}

func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached snapshot, or (nil, nil) when the key is absent.
func (c *SummaryCache) Get(ctx context.Context) (*ports.DashboardSummary, error) {
	raw, err := c.client.Get(ctx, summaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.DashboardCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s ports.DashboardSummary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	metrics.DashboardCacheTotal.WithLabelValues("hit").Inc()
	return &s, nil
}

func (c *SummaryCache) Set(ctx context.Context, s *ports.DashboardSummary) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKey, raw, summaryTTL).Err()
}
