package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestStatsKeyScopes(t *testing.T) {
	if got := statsKey(nil); got != "stats:all" {
		t.Fatalf("admin scope: want stats:all, got %s", got)
	}
	id := int64(7)
	if got := statsKey(&id); got != "stats:recruiter:7" {
		t.Fatalf("recruiter scope: want stats:recruiter:7, got %s", got)
	}
}

func TestInvalidationCoversBothScopes(t *testing.T) {
	keys := invalidationKeys(7)
	want := map[string]bool{"stats:all": false, "stats:recruiter:7": false}
	for _, key := range keys {
		if _, ok := want[key]; !ok {
			t.Fatalf("unexpected key %s", key)
		}
		want[key] = true
	}
	for key, seen := range want {
		if !seen {
			t.Fatalf("mutation must drop %s", key)
		}
	}
}

func TestNewStatsCacheDisabledWithoutBackend(t *testing.T) {
	if c := NewStatsCache(nil, time.Minute, zap.NewNop()); c != nil {
		t.Fatal("cache without a client must be disabled")
	}
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *StatsCache
	if got := c.Get(context.Background(), nil); got != nil {
		t.Fatalf("nil cache get: want nil, got %+v", got)
	}
	c.Set(context.Background(), nil, nil)
	c.Invalidate(context.Background(), 1)
}
