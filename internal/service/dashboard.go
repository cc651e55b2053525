package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/teamboard/teamboard/internal/domain/model"
)

const summaryCacheKey = "summary"

// DashboardCache stores serialized summaries; a nil Get result means miss.
type DashboardCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// UserCounter is the slice of the user repository the dashboard needs.
type UserCounter interface {
	Count(ctx context.Context) (int, error)
}

// DashboardSummary aggregates the counts shown on the dashboard view.
type DashboardSummary struct {
	Users      int              `json:"users"`
	TeamSize   int              `json:"team_size"`
	Activities int              `json:"activities"`
	Recent     []model.Activity `json:"recent"`
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Users      UserCounter
	Team       TeamRepository
	Activities ActivityRepository
	Cache      DashboardCache // optional
	Logger     *slog.Logger
}

// DashboardService assembles the dashboard summary, with a short-TTL cache in
// front of the counting queries.
type DashboardService struct {
	users      UserCounter
	team       TeamRepository
	activities ActivityRepository
	cache      DashboardCache
	logger     *slog.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		users:      opts.Users,
		team:       opts.Team,
		activities: opts.Activities,
		cache:      opts.Cache,
		logger:     logger,
	}
}

// Summary returns the dashboard counts and recent activities. Cache failures
// degrade to recomputing; they are never surfaced to the caller.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, summaryCacheKey); err != nil {
			s.logger.WarnContext(ctx, "dashboard cache read failed", "error", err)
		} else if data != nil {
			var cached DashboardSummary
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	summary, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, marshalErr := json.Marshal(summary); marshalErr == nil {
			if setErr := s.cache.Set(ctx, summaryCacheKey, data); setErr != nil {
				s.logger.WarnContext(ctx, "dashboard cache write failed", "error", setErr)
			}
		}
	}
	return summary, nil
}

func (s *DashboardService) compute(ctx context.Context) (*DashboardSummary, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	teamSize, err := s.team.Count(ctx)
	if err != nil {
		return nil, err
	}
	activityCount, err := s.activities.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.activities.List(ctx, model.ActivitiesListOptions{Limit: 5})
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Users:      users,
		TeamSize:   teamSize,
		Activities: activityCount,
		Recent:     recent,
	}, nil
}
