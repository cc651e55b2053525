package service

import (
	"context"
	"errors"

	"github.com/teamboard/teamboard/internal/domain/model"
	apperrors "github.com/teamboard/teamboard/internal/errors"
)

// UserAdminRepository defines the data access needed by UserAdminService.
type UserAdminRepository interface {
	Create(ctx context.Context, req *model.CreateUserRequest, passwordHash string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// UserAdminService provides the admin-only account management operations.
// Authorization is enforced by callers via the authz gate; this layer assumes
// an already-authorized admin.
type UserAdminService struct {
	repo UserAdminRepository
}

// NewUserAdminService constructs a new UserAdminService.
func NewUserAdminService(repo UserAdminRepository) *UserAdminService {
	return &UserAdminService{repo: repo}
}

// List returns all accounts.
func (s *UserAdminService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Create validates the request, hashes the password, and inserts the account.
func (s *UserAdminService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, errors.New("create user request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hash password")
	}
	return s.repo.Create(ctx, req, hash)
}
