package httpx

import (
	"net/http"

	"github.com/teamboard/teamboard/internal/authz"
	"github.com/teamboard/teamboard/internal/service"
)

// DashboardHandlers provides HTTP handlers for the dashboard summary.
type DashboardHandlers struct {
	Svc  *service.DashboardService
	Gate *authz.Gate
}

// Summary handles GET /api/dashboard/summary.
func (h *DashboardHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Gate.RequireAuth(r.Context(), CredentialFromRequest(r)); err != nil {
		WriteAppError(w, err)
		return
	}

	summary, err := h.Svc.Summary(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}
