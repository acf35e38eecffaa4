package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/spec-kit/staffing-service/internal/domain"
)

type recordingStatsCache struct {
	entries     map[string]*domain.SubmissionStats
	setCalls    []string
	invalidated []int64
}

func newRecordingStatsCache() *recordingStatsCache {
	return &recordingStatsCache{entries: make(map[string]*domain.SubmissionStats)}
}

func scopeKey(recruiterID *int64) string {
	if recruiterID == nil {
		return "all"
	}
	return fmt.Sprintf("recruiter:%d", *recruiterID)
}

func (c *recordingStatsCache) Get(_ context.Context, recruiterID *int64) *domain.SubmissionStats {
	return c.entries[scopeKey(recruiterID)]
}

func (c *recordingStatsCache) Set(_ context.Context, recruiterID *int64, stats *domain.SubmissionStats) {
	key := scopeKey(recruiterID)
	c.entries[key] = stats
	c.setCalls = append(c.setCalls, key)
}

func (c *recordingStatsCache) Invalidate(_ context.Context, recruiterID int64) {
	c.invalidated = append(c.invalidated, recruiterID)
	c.entries = make(map[string]*domain.SubmissionStats)
}

func newCachedService(cacheImpl SubmissionStatsCache) (*SubmissionService, *fakeSubmissionRepo) {
	repo := newFakeSubmissionRepo()
	svc := NewSubmissionService(SubmissionDependencies{SubmissionRepo: repo, StatsCache: cacheImpl})
	return svc, repo
}

func TestMutationsInvalidateStatsCache(t *testing.T) {
	statsCache := newRecordingStatsCache()
	svc, _ := newCachedService(statsCache)
	recruiter := domain.Principal{ID: 5, Role: domain.RoleRecruiter}

	submission, err := svc.Create(context.Background(), recruiter, SubmissionCreateInput{
		ConsultantID:   1,
		CompanyID:      2,
		PositionTitle:  "Data Engineer",
		SubmissionDate: datePtr(2024, time.April, 1),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(statsCache.invalidated) != 1 || statsCache.invalidated[0] != 5 {
		t.Fatalf("create must invalidate the owner scope, got %v", statsCache.invalidated)
	}

	status := domain.SubmissionStatusAccepted
	if _, err := svc.Update(context.Background(), recruiter, submission.ID, SubmissionUpdateInput{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(statsCache.invalidated) != 2 {
		t.Fatalf("update must invalidate, got %v", statsCache.invalidated)
	}

	if err := svc.Delete(context.Background(), recruiter, submission.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(statsCache.invalidated) != 3 || statsCache.invalidated[2] != 5 {
		t.Fatalf("delete must invalidate the owner scope, got %v", statsCache.invalidated)
	}
}

func TestFailedMutationLeavesCacheUntouched(t *testing.T) {
	statsCache := newRecordingStatsCache()
	svc, _ := newCachedService(statsCache)
	foreign := domain.Principal{ID: 6, Role: domain.RoleRecruiter}

	owner := domain.Principal{ID: 5, Role: domain.RoleRecruiter}
	submission, err := svc.Create(context.Background(), owner, SubmissionCreateInput{
		ConsultantID:   1,
		CompanyID:      2,
		PositionTitle:  "Data Engineer",
		SubmissionDate: datePtr(2024, time.April, 1),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before := len(statsCache.invalidated)

	if err := svc.Delete(context.Background(), foreign, submission.ID); err == nil {
		t.Fatal("foreign delete must fail")
	}
	if len(statsCache.invalidated) != before {
		t.Fatalf("denied mutation must not invalidate, got %v", statsCache.invalidated)
	}
}

func TestStatsServedFromCacheWhenFresh(t *testing.T) {
	statsCache := newRecordingStatsCache()
	cached := &domain.SubmissionStats{TotalSubmissions: 9}
	id := int64(5)
	statsCache.entries[scopeKey(&id)] = cached

	// A repository that fails on every call proves the aggregate never
	// reaches the store on a cache hit.
	svc := NewSubmissionService(SubmissionDependencies{
		SubmissionRepo: &failingSubmissionRepo{},
		StatsCache:     statsCache,
	})

	got, err := svc.Stats(context.Background(), domain.Principal{ID: 5, Role: domain.RoleRecruiter})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if got.TotalSubmissions != 9 {
		t.Fatalf("want cached aggregate, got %+v", got)
	}
}

func TestStatsPopulatesCacheOnMiss(t *testing.T) {
	statsCache := newRecordingStatsCache()
	svc, _ := newCachedService(statsCache)

	if _, err := svc.Stats(context.Background(), domain.Principal{ID: 1, Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(statsCache.setCalls) != 1 || statsCache.setCalls[0] != "all" {
		t.Fatalf("miss must populate the admin scope, got %v", statsCache.setCalls)
	}

	if _, err := svc.Stats(context.Background(), domain.Principal{ID: 5, Role: domain.RoleRecruiter}); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(statsCache.setCalls) != 2 || statsCache.setCalls[1] != "recruiter:5" {
		t.Fatalf("miss must populate the recruiter scope, got %v", statsCache.setCalls)
	}
}
