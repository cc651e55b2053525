package httpx

import (
	"net/http"

	"github.com/teamboard/teamboard/internal/authz"
	"github.com/teamboard/teamboard/internal/domain/model"
	"github.com/teamboard/teamboard/internal/service"
)

// AdminHandlers provides the admin-only user management API.
type AdminHandlers struct {
	Svc  *service.UserAdminService
	Gate *authz.Gate
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Gate.RequireAdmin(r.Context(), CredentialFromRequest(r)); err != nil {
		WriteAppError(w, err)
		return
	}

	users, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /api/admin/users.
func (h *AdminHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Gate.RequireAdmin(r.Context(), CredentialFromRequest(r)); err != nil {
		WriteAppError(w, err)
		return
	}

	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}
