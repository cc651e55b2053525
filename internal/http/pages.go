package httpx

import (
	"log/slog"
	"net/http"

	"github.com/teamboard/teamboard/internal/authz"
	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
	"github.com/teamboard/teamboard/internal/domain/model"
	"github.com/teamboard/teamboard/internal/nav"
	"github.com/teamboard/teamboard/internal/service"
)

// PageHandlers renders the server-side HTML views.
type PageHandlers struct {
	T          *Renderer
	Gate       *authz.Gate
	Dashboard  *service.DashboardService
	Team       *service.TeamService
	Activities *service.ActivityService
	Users      *service.UserAdminService
	Logger     *slog.Logger
}

func (h *PageHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login renders the sign-in page. Already-authenticated visitors are sent to
// the dashboard instead.
func (h *PageHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Gate.RequireAuth(r.Context(), CredentialFromRequest(r)); err == nil {
		http.Redirect(w, r, authz.HomePath, http.StatusSeeOther)
		return
	}
	h.T.Render(w, http.StatusOK, "login", nil)
}

// requireUser resolves the viewer for a regular page, redirecting to the
// login page when the session is missing or invalid. The route middleware
// already gates these paths; this keeps the pages correct on their own.
func (h *PageHandlers) requireUser(w http.ResponseWriter, r *http.Request) (*domainauth.User, bool) {
	user, err := h.Gate.RequireAuth(r.Context(), CredentialFromRequest(r))
	if err != nil {
		http.Redirect(w, r, authz.LoginPath, http.StatusSeeOther)
		return nil, false
	}
	return user, true
}

func (h *PageHandlers) pageData(user *domainauth.User, title, active string, data any) PageData {
	return PageData{
		Title:  title,
		Active: active,
		User:   user,
		Nav:    nav.ItemsFor(user.Role),
		Data:   data,
	}
}

// DashboardPage renders the main dashboard view.
func (h *PageHandlers) DashboardPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	summary, err := h.Dashboard.Summary(r.Context())
	if err != nil {
		h.logger().Error("dashboard summary failed", "error", err)
		h.T.RenderError(w, http.StatusInternalServerError)
		return
	}
	h.T.Render(w, http.StatusOK, "dashboard", h.pageData(user, "Dashboard", "/dashboard", summary))
}

// TeamPage renders the team roster view.
func (h *PageHandlers) TeamPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	members, err := h.Team.List(r.Context())
	if err != nil {
		h.logger().Error("team list failed", "error", err)
		h.T.RenderError(w, http.StatusInternalServerError)
		return
	}
	h.T.Render(w, http.StatusOK, "team", h.pageData(user, "Team", "/team", members))
}

// ActivitiesPage renders the activity feed view.
func (h *PageHandlers) ActivitiesPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	activities, err := h.Activities.List(r.Context(), model.ActivitiesListOptions{})
	if err != nil {
		h.logger().Error("activities list failed", "error", err)
		h.T.RenderError(w, http.StatusInternalServerError)
		return
	}
	h.T.Render(w, http.StatusOK, "activities", h.pageData(user, "Activities", "/activities", activities))
}

// AdminPage renders the user management view. Unauthenticated visitors go to
// the login page, authenticated non-admins go home, and anything else is a
// server error.
func (h *PageHandlers) AdminPage(w http.ResponseWriter, r *http.Request) {
	user, redirect, err := h.Gate.RequireAdminPage(r.Context(), CredentialFromRequest(r))
	if redirect != "" {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}
	if err != nil {
		h.logger().Error("admin page gate failed", "error", err)
		h.T.RenderError(w, http.StatusInternalServerError)
		return
	}
	users, err := h.Users.List(r.Context())
	if err != nil {
		h.logger().Error("admin user list failed", "error", err)
		h.T.RenderError(w, http.StatusInternalServerError)
		return
	}
	h.T.Render(w, http.StatusOK, "admin", h.pageData(user, "Admin", "/admin", users))
}
