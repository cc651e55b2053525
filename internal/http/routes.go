package httpx

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/teamboard/teamboard/internal/authz"
	"github.com/teamboard/teamboard/internal/ports"
	"github.com/teamboard/teamboard/internal/service"
)

//go:embed static
var staticFS embed.FS

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Dashboard  *service.DashboardService
	Team       *service.TeamService
	Activities *service.ActivityService
	Users      *service.UserAdminService
	Verifier   ports.TokenVerifier
	Gate       *authz.Gate

	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP handler stack: a mux with API,
// page, static and health routes, wrapped in the route gate, request logging
// and panic recovery.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := NewRenderer(logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Gate:         services.Gate,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	}
	activityHandlers := &ActivityHandlers{Svc: services.Activities, Gate: services.Gate}
	teamHandlers := &TeamHandlers{Svc: services.Team, Gate: services.Gate}
	dashboardHandlers := &DashboardHandlers{Svc: services.Dashboard, Gate: services.Gate}
	adminHandlers := &AdminHandlers{Svc: services.Users, Gate: services.Gate}
	pageHandlers := &PageHandlers{
		T:          renderer,
		Gate:       services.Gate,
		Dashboard:  services.Dashboard,
		Team:       services.Team,
		Activities: services.Activities,
		Users:      services.Users,
		Logger:     logger,
	}

	registerAPIRoutes(mux, authHandlers, activityHandlers, teamHandlers, dashboardHandlers, adminHandlers)
	registerPageRoutes(mux, pageHandlers)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /static/", staticHandler())

	return Chain(mux,
		Recover(logger),
		Logging(logger),
		RequireLogin(services.Verifier, DefaultRouteTable()),
	), nil
}

func registerAPIRoutes(
	mux *http.ServeMux,
	auth *AuthHandlers,
	activities *ActivityHandlers,
	team *TeamHandlers,
	dashboard *DashboardHandlers,
	admin *AdminHandlers,
) {
	mux.HandleFunc("POST /api/auth/login", auth.Login)
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)
	mux.HandleFunc("GET /api/auth/me", auth.Me)

	mux.HandleFunc("GET /api/activities", activities.List)
	mux.HandleFunc("POST /api/activities", activities.Create)
	mux.HandleFunc("GET /api/team", team.List)
	mux.HandleFunc("GET /api/dashboard/summary", dashboard.Summary)

	mux.HandleFunc("GET /api/admin/users", admin.ListUsers)
	mux.HandleFunc("POST /api/admin/users", admin.CreateUser)
}

func registerPageRoutes(mux *http.ServeMux, h *PageHandlers) {
	mux.HandleFunc("GET /{$}", h.DashboardPage)
	mux.HandleFunc("GET /login", h.Login)
	mux.HandleFunc("GET /dashboard", h.DashboardPage)
	mux.HandleFunc("GET /team", h.TeamPage)
	mux.HandleFunc("GET /activities", h.ActivitiesPage)
	mux.HandleFunc("GET /admin", h.AdminPage)
}

// staticHandler serves the embedded static assets.
func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The embed is part of the binary; a bad sub path is a build defect.
		panic("static assets: " + err.Error())
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
