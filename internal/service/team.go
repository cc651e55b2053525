package service

import (
	"context"

	"github.com/teamboard/teamboard/internal/domain/model"
)

// TeamRepository defines the data access needed by TeamService.
type TeamRepository interface {
	List(ctx context.Context) ([]model.TeamMember, error)
	Count(ctx context.Context) (int, error)
}

// TeamService provides business logic for the team directory view.
type TeamService struct {
	repo TeamRepository
}

// NewTeamService constructs a new TeamService.
func NewTeamService(repo TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

// List returns all team members.
func (s *TeamService) List(ctx context.Context) ([]model.TeamMember, error) {
	return s.repo.List(ctx)
}
