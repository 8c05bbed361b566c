package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/altfolio/portfolio-api/internal/api/metrics"
	"github.com/altfolio/portfolio-api/internal/core/ports"
)

const defaultSummaryTTL = 5 * time.Minute

// SummaryCache stores computed portfolio summaries per user, JSON-encoded.
// Key format: summary:<user_id>
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}
	return &SummaryCache{client: client, ttl: ttl}
}

// Get returns the cached summary for userID, reporting whether one was found.
func (c *SummaryCache) Get(ctx context.Context, userID string) (*ports.PortfolioView, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("summary cache get: %w", err)
	}

	var view ports.PortfolioView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, false, fmt.Errorf("summary cache decode: %w", err)
	}

	metrics.SummaryCacheTotal.WithLabelValues("hit").Inc()
	return &view, true, nil
}

// Set stores the summary for userID (expires after the configured TTL).
func (c *SummaryCache) Set(ctx context.Context, userID string, view *ports.PortfolioView) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("summary cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), raw, c.ttl).Err()
}

// Invalidate drops cached summaries for all given users.
func (c *SummaryCache) Invalidate(ctx context.Context, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, c.key(id))
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *SummaryCache) key(userID string) string {
	return fmt.Sprintf("summary:%s", userID)
}
