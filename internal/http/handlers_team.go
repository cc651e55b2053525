package httpx

import (
	"net/http"

	"github.com/teamboard/teamboard/internal/authz"
	"github.com/teamboard/teamboard/internal/service"
)

// TeamHandlers provides HTTP handlers for the team roster.
type TeamHandlers struct {
	Svc  *service.TeamService
	Gate *authz.Gate
}

// List handles GET /api/team.
func (h *TeamHandlers) List(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Gate.RequireAuth(r.Context(), CredentialFromRequest(r)); err != nil {
		WriteAppError(w, err)
		return
	}

	members, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, members)
}
