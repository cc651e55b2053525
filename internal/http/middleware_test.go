package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
)

// stubVerifier accepts exactly one raw token value.
type stubVerifier struct {
	valid string
}

func (v stubVerifier) Verify(raw string) (*domainauth.Claims, bool) {
	if raw != "" && raw == v.valid {
		return &domainauth.Claims{Subject: "u1", Role: domainauth.RoleUser}, true
	}
	return nil, false
}

func gatedHandler(t *testing.T, valid string) (http.Handler, *int) {
	t.Helper()
	hits := 0
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	})
	return RequireLogin(stubVerifier{valid: valid}, DefaultRouteTable())(inner), &hits
}

func TestRequireLogin_PublicPathsPassWithoutCookie(t *testing.T) {
	h, hits := gatedHandler(t, "good")

	for _, path := range []string{"/login", "/api/auth/login", "/static/css/app.css", "/favicon.ico", "/healthz"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "path %s should be public", path)
	}
	assert.Equal(t, 5, *hits)
}

func TestRequireLogin_ProtectedPathWithoutCookieRedirects(t *testing.T) {
	h, hits := gatedHandler(t, "good")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Host = "board.example.com"
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "http://board.example.com/login", rec.Header().Get("Location"))
	assert.Zero(t, *hits)
}

func TestRequireLogin_InvalidTokenRedirects(t *testing.T) {
	h, hits := gatedHandler(t, "good")

	for _, token := range []string{"forged", "expired-or-garbage", ""} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/team", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		}
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	}
	assert.Zero(t, *hits)
}

func TestRequireLogin_ValidTokenProceeds(t *testing.T) {
	h, hits := gatedHandler(t, "good")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good"})
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, *hits)
}

func TestRequireLogin_DefaultDeny(t *testing.T) {
	h, hits := gatedHandler(t, "good")

	// Paths nobody registered still require authentication.
	for _, path := range []string{"/", "/api/activities", "/nonexistent", "/admin"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code, "path %s should be protected", path)
	}
	assert.Zero(t, *hits)
}

func TestRequireLogin_RedirectUsesForwardedProto(t *testing.T) {
	h, _ := gatedHandler(t, "good")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Host = "board.example.com"
	req.Header.Set("X-Forwarded-Proto", "https")
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://board.example.com/login", rec.Header().Get("Location"))
}

func TestRequireLogin_RedirectHasNoBodyContent(t *testing.T) {
	h, _ := gatedHandler(t, "good")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	// No error payload leaks to the unauthenticated client.
	assert.NotContains(t, rec.Body.String(), "error")
}

func TestRouteTable_FirstMatchWins(t *testing.T) {
	table := NewRouteTable(
		Rule{Prefix: "/api/auth/login", Class: Public},
		Rule{Prefix: "/api/", Class: Protected},
	)

	assert.Equal(t, Public, table.Classify("/api/auth/login"))
	assert.Equal(t, Public, table.Classify("/api/auth/login/"))
	assert.Equal(t, Protected, table.Classify("/api/team"))
	assert.Equal(t, Protected, table.Classify("/unlisted"))
}

func TestDefaultRouteTable(t *testing.T) {
	table := DefaultRouteTable()

	cases := []struct {
		path string
		want Classification
	}{
		{"/login", Public},
		{"/login/reset", Public},
		{"/api/auth/login", Public},
		{"/static/js/login.js", Public},
		{"/favicon.ico", Public},
		{"/healthz", Public},
		{"/", Protected},
		{"/dashboard", Protected},
		{"/team", Protected},
		{"/activities", Protected},
		{"/admin", Protected},
		{"/api/auth/logout", Protected},
		{"/api/auth/me", Protected},
		{"/api/activities", Protected},
		{"/api/admin/users", Protected},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, table.Classify(tc.path), "path %s", tc.path)
	}
}
