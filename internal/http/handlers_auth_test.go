package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/teamboard/internal/authz"
	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
	apperrors "github.com/teamboard/teamboard/internal/errors"
	"github.com/teamboard/teamboard/internal/service"
)

// stubAuthService implements AuthServiceInterface for handler tests.
type stubAuthService struct {
	result *service.LoginResult
	err    error
	got    service.LoginInput
}

func (s *stubAuthService) Login(_ context.Context, input service.LoginInput) (*service.LoginResult, error) {
	s.got = input
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubAuthService) TokenTTL() time.Duration { return 8 * time.Hour }

// stubSessions maps raw tokens to users for gate tests.
type stubSessions map[string]*domainauth.User

func (s stubSessions) Resolve(_ context.Context, raw string) *domainauth.User {
	return s[raw]
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	user := domainauth.User{ID: "u1", Username: "jdoe", Name: "J. Doe", Role: domainauth.RoleUser}
	svc := &stubAuthService{result: &service.LoginResult{User: user, Token: "signed-token"}}
	h := &AuthHandlers{Svc: svc, Gate: authz.NewGate(stubSessions{})}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"jdoe","password":"hunter22"}`))
	req.RemoteAddr = "203.0.113.7:51234"
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((8 * time.Hour).Seconds()), cookie.MaxAge)

	var body loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "jdoe", body.User.Username)
	assert.NotContains(t, rec.Body.String(), "signed-token", "token must not appear in the body")

	assert.Equal(t, "203.0.113.7", svc.got.RemoteAddr)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{err: apperrors.Unauthorized("Invalid username or password")}
	h := &AuthHandlers{Svc: svc, Gate: authz.NewGate(stubSessions{})}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"jdoe","password":"wrong"}`))
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessionCookie(t, rec))
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
}

func TestLogin_RateLimited(t *testing.T) {
	svc := &stubAuthService{err: apperrors.RateLimited("Too many login attempts. Try again later.")}
	h := &AuthHandlers{Svc: svc, Gate: authz.NewGate(stubSessions{})}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"jdoe","password":"x"}`))
	h.Login(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLogin_MalformedBody(t *testing.T) {
	svc := &stubAuthService{}
	h := &AuthHandlers{Svc: svc, Gate: authz.NewGate(stubSessions{})}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{not json`))
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.got.Username, "service must not be called on a bad body")
}

func TestLogin_ForwardedForPreferred(t *testing.T) {
	user := domainauth.User{ID: "u1", Username: "jdoe", Role: domainauth.RoleUser}
	svc := &stubAuthService{result: &service.LoginResult{User: user, Token: "tok"}}
	h := &AuthHandlers{Svc: svc, Gate: authz.NewGate(stubSessions{})}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"jdoe","password":"hunter22"}`))
	req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	h.Login(rec, req)

	assert.Equal(t, "198.51.100.4", svc.got.RemoteAddr)
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuthService{}, Gate: authz.NewGate(stubSessions{})}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "whatever"})
	h.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestMe_Authenticated(t *testing.T) {
	admin := &domainauth.User{ID: "a1", Username: "admin.mpc", Name: "Admin", Role: domainauth.RoleAdmin}
	h := &AuthHandlers{
		Svc:  &stubAuthService{},
		Gate: authz.NewGate(stubSessions{"admin-token": admin}),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "admin-token"})
	h.Me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body userResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "admin.mpc", body.Username)
	assert.Equal(t, "admin", body.Role)
}

func TestMe_Unauthenticated(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuthService{}, Gate: authz.NewGate(stubSessions{})}

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
