package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/teamboard/teamboard/internal/authz"
	"github.com/teamboard/teamboard/internal/ports"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares in order: the first middleware is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Logging logs one line per request with method, path, status and duration.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// Recover converts panics into 500 responses instead of tearing down the
// connection.
func Recover(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", "panic", rec, "path", r.URL.Path)
					WriteError(w, ErrorParams{
						Code:    http.StatusInternalServerError,
						ErrCode: "internal",
						Err:     errors.New("internal server error"),
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLogin gates every request through the route table. Public paths pass
// straight through. Protected paths pass only when the session cookie holds a
// token the verifier accepts; otherwise the request is redirected to the
// login page with no body, no log line and no error. The redirect URL is
// absolute, derived from the request's own origin.
//
// Verification here is a pure signature-and-expiry check; handlers that need
// the user resolve it separately. A token can pass this gate and still be
// rejected downstream if its subject no longer exists.
func RequireLogin(verifier ports.TokenVerifier, table RouteTable) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if table.Classify(r.URL.Path) == Public {
				next.ServeHTTP(w, r)
				return
			}
			if raw := CredentialFromRequest(r); raw != "" {
				if _, ok := verifier.Verify(raw); ok {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Redirect(w, r, loginURL(r), http.StatusSeeOther)
		})
	}
}

// CredentialFromRequest extracts the raw session token from the request
// cookie. Returns "" when the cookie is absent.
func CredentialFromRequest(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// loginURL builds an absolute URL to the login page on the request's origin.
func loginURL(r *http.Request) string {
	u := url.URL{
		Scheme: "http",
		Host:   r.Host,
		Path:   authz.LoginPath,
	}
	if isSecureRequest(r) {
		u.Scheme = "https"
	}
	return u.String()
}

// isSecureRequest reports whether the request arrived over TLS, directly or
// via a terminating proxy.
func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
