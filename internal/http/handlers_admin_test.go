package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/teamboard/internal/authz"
	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
	"github.com/teamboard/teamboard/internal/domain/model"
	"github.com/teamboard/teamboard/internal/service"
)

type stubUserRepo struct {
	users   []model.User
	created *model.CreateUserRequest
}

func (r *stubUserRepo) Create(_ context.Context, req *model.CreateUserRequest, hash string) (*model.User, error) {
	r.created = req
	return &model.User{ID: "new", Username: req.Username, Name: req.Name, Role: req.Role, PasswordHash: hash}, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	return r.users, nil
}

func adminTestSessions() stubSessions {
	return stubSessions{
		"admin-token": {ID: "a1", Username: "admin.mpc", Role: domainauth.RoleAdmin},
		"user-token":  {ID: "u1", Username: "jdoe", Role: domainauth.RoleUser},
	}
}

func TestAdminListUsers_RoleMatrix(t *testing.T) {
	repo := &stubUserRepo{users: []model.User{{ID: "a1", Username: "admin.mpc"}}}
	h := &AdminHandlers{
		Svc:  service.NewUserAdminService(repo),
		Gate: authz.NewGate(adminTestSessions()),
	}

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"invalid token", "forged", http.StatusUnauthorized},
		{"non-admin", "user-token", http.StatusForbidden},
		{"admin", "admin-token", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			if tc.token != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tc.token})
			}
			h.ListUsers(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestAdminCreateUser(t *testing.T) {
	repo := &stubUserRepo{}
	h := &AdminHandlers{
		Svc:  service.NewUserAdminService(repo),
		Gate: authz.NewGate(adminTestSessions()),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users",
		strings.NewReader(`{"username":"NewUser","name":"New User","password":"longenough1","role":"user"}`))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "admin-token"})
	h.CreateUser(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, repo.created)
	assert.Equal(t, "newuser", repo.created.Username, "usernames are stored lowercase")
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestAdminCreateUser_ValidationError(t *testing.T) {
	repo := &stubUserRepo{}
	h := &AdminHandlers{
		Svc:  service.NewUserAdminService(repo),
		Gate: authz.NewGate(adminTestSessions()),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users",
		strings.NewReader(`{"username":"x","name":"X","password":"short","role":"user"}`))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "admin-token"})
	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, repo.created)
}

func TestAdminCreateUser_ForbiddenForNonAdmin(t *testing.T) {
	repo := &stubUserRepo{}
	h := &AdminHandlers{
		Svc:  service.NewUserAdminService(repo),
		Gate: authz.NewGate(adminTestSessions()),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users",
		strings.NewReader(`{"username":"sneaky","name":"S","password":"longenough1","role":"admin"}`))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "user-token"})
	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, repo.created)
}
