package httpx

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/teamboard/teamboard/internal/authz"
	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
	"github.com/teamboard/teamboard/internal/service"
)

// AuthServiceInterface defines the auth service operations the handlers need.
type AuthServiceInterface interface {
	Login(ctx context.Context, input service.LoginInput) (*service.LoginResult, error)
	TokenTTL() time.Duration
}

// AuthHandlers provides HTTP handlers for login, logout and identity lookup.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	Gate         *authz.Gate
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User userResponse `json:"user"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func toUserResponse(u *domainauth.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     string(u.Role),
	}
}

// Login handles POST /api/auth/login. On success the session token is set as
// an HttpOnly cookie; the token itself is never returned in the body.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), service.LoginInput{
		Username:   req.Username,
		Password:   req.Password,
		RemoteAddr: clientIP(r),
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	SetSessionCookie(w, r, result.Token, h.Svc.TokenTTL(), h.CookieDomain)
	h.logger().Info("user logged in", "username", result.User.Username)
	WriteJSON(w, http.StatusOK, loginResponse{User: toUserResponse(&result.User)})
}

// Logout handles POST /api/auth/logout. Clearing the cookie is all there is
// to do: tokens are self-contained, so there is no server-side session to
// tear down.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	ClearSessionCookie(w, r, h.CookieDomain)
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me handles GET /api/auth/me and returns the authenticated user.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Gate.RequireAuth(r.Context(), CredentialFromRequest(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// clientIP returns the requesting client address without the port, preferring
// the first X-Forwarded-For hop when a proxy set one.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
