package service

import (
	"context"
	"errors"

	"github.com/teamboard/teamboard/internal/domain/model"
)

// ActivityRepository defines the data access needed by ActivityService.
type ActivityRepository interface {
	Create(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error)
	List(ctx context.Context, opts model.ActivitiesListOptions) ([]model.Activity, error)
	Count(ctx context.Context) (int, error)
}

// ActivityService provides business logic for the activities view.
type ActivityService struct {
	repo ActivityRepository
}

// NewActivityService constructs a new ActivityService.
func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// List returns activities newest-first.
func (s *ActivityService) List(ctx context.Context, opts model.ActivitiesListOptions) ([]model.Activity, error) {
	return s.repo.List(ctx, opts)
}

// Create records a new activity for the given author.
func (s *ActivityService) Create(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error) {
	if req == nil {
		return nil, errors.New("create activity request is required")
	}
	return s.repo.Create(ctx, req)
}
