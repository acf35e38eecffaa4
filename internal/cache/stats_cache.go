package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/staffing-service/internal/domain"
)

const statsKeyAll = "stats:all"

// StatsCache keeps the submission stats aggregate in Redis for a short TTL.
// Every submission mutation invalidates both the owning recruiter's entry
// and the unscoped admin entry. A nil cache is a no-op.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatsCache constructs the cache.
func NewStatsCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *StatsCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &StatsCache{client: client, ttl: ttl, logger: logger}
}

func statsKey(recruiterID *int64) string {
	if recruiterID == nil {
		return statsKeyAll
	}
	return fmt.Sprintf("stats:recruiter:%d", *recruiterID)
}

// Get returns the cached aggregate, or nil on miss.
func (c *StatsCache) Get(ctx context.Context, recruiterID *int64) *domain.SubmissionStats {
	if c == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, statsKey(recruiterID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("stats cache get failed", zap.Error(err))
		}
		return nil
	}
	var stats domain.SubmissionStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

// Set stores the aggregate under the scope key.
func (c *StatsCache) Set(ctx context.Context, recruiterID *int64, stats *domain.SubmissionStats) {
	if c == nil || stats == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey(recruiterID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache set failed", zap.Error(err))
	}
}

// invalidationKeys lists the entries a mutation owned by recruiterID makes
// stale: the owner's scope and the unscoped admin aggregate.
func invalidationKeys(recruiterID int64) []string {
	return []string{statsKeyAll, statsKey(&recruiterID)}
}

// Invalidate drops the entries affected by a mutation owned by recruiterID.
func (c *StatsCache) Invalidate(ctx context.Context, recruiterID int64) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, invalidationKeys(recruiterID)...).Err(); err != nil {
		c.logger.Warn("stats cache invalidate failed", zap.Error(err))
	}
}
