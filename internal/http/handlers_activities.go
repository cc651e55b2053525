package httpx

import (
	"net/http"
	"strconv"

	"github.com/teamboard/teamboard/internal/authz"
	"github.com/teamboard/teamboard/internal/domain/model"
	"github.com/teamboard/teamboard/internal/service"
)

// ActivityHandlers provides HTTP handlers for the activity feed.
type ActivityHandlers struct {
	Svc  *service.ActivityService
	Gate *authz.Gate
}

// List handles GET /api/activities.
func (h *ActivityHandlers) List(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Gate.RequireAuth(r.Context(), CredentialFromRequest(r)); err != nil {
		WriteAppError(w, err)
		return
	}

	opts := model.ActivitiesListOptions{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	activities, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, activities)
}

// Create handles POST /api/activities. The activity is attributed to the
// authenticated user regardless of what the body claims.
func (h *ActivityHandlers) Create(w http.ResponseWriter, r *http.Request) {
	user, err := h.Gate.RequireAuth(r.Context(), CredentialFromRequest(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var req model.CreateActivityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.UserID = user.ID

	activity, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, activity)
}

// queryInt parses a non-negative integer query parameter, returning 0 when
// absent or malformed.
func queryInt(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
