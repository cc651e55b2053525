package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/teamboard/internal/domain/model"
)

type countingActivityRepo struct {
	listCalls int
	items     []model.Activity
}

func (r *countingActivityRepo) Create(_ context.Context, _ *model.CreateActivityRequest) (*model.Activity, error) {
	return nil, errors.New("not used")
}

func (r *countingActivityRepo) List(_ context.Context, _ model.ActivitiesListOptions) ([]model.Activity, error) {
	r.listCalls++
	return r.items, nil
}

func (r *countingActivityRepo) Count(_ context.Context) (int, error) {
	return len(r.items), nil
}

type fixedTeamRepo struct{ n int }

func (r fixedTeamRepo) List(_ context.Context) ([]model.TeamMember, error) { return nil, nil }
func (r fixedTeamRepo) Count(_ context.Context) (int, error)              { return r.n, nil }

type fixedCounter struct{ n int }

func (c fixedCounter) Count(_ context.Context) (int, error) { return c.n, nil }

// memoryCache is a map-backed DashboardCache.
type memoryCache struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string][]byte{}} }

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.data[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	return nil
}

func newDashboardService(cache DashboardCache, activities *countingActivityRepo) *DashboardService {
	return NewDashboardService(DashboardServiceOptions{
		Users:      fixedCounter{n: 7},
		Team:       fixedTeamRepo{n: 4},
		Activities: activities,
		Cache:      cache,
	})
}

func TestSummary_ComputesCounts(t *testing.T) {
	repo := &countingActivityRepo{items: []model.Activity{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}}
	svc := newDashboardService(nil, repo)

	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, summary.Users)
	assert.Equal(t, 4, summary.TeamSize)
	assert.Equal(t, 2, summary.Activities)
	assert.Len(t, summary.Recent, 2)
}

func TestSummary_SecondCallServedFromCache(t *testing.T) {
	repo := &countingActivityRepo{items: []model.Activity{{ID: "1", Title: "a"}}}
	cache := newMemoryCache()
	svc := newDashboardService(cache, repo)

	first, err := svc.Summary(context.Background())
	require.NoError(t, err)
	second, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls, "second call must not recompute")
}

func TestSummary_CacheFailuresDegrade(t *testing.T) {
	repo := &countingActivityRepo{items: []model.Activity{{ID: "1", Title: "a"}}}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := newDashboardService(cache, repo)

	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, summary.Users)
}

func TestSummary_CorruptCacheEntryRecomputes(t *testing.T) {
	repo := &countingActivityRepo{items: []model.Activity{{ID: "1", Title: "a"}}}
	cache := newMemoryCache()
	cache.data["summary"] = []byte("{not json")
	svc := newDashboardService(cache, repo)

	_, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	// The bad entry is replaced with a good one.
	var stored DashboardSummary
	require.NoError(t, json.Unmarshal(cache.data["summary"], &stored))
	assert.Equal(t, 7, stored.Users)
}
