// Package authz is the fine-grained, per-operation authorization gate.
// Handlers and server-side logic call it at the point of use; it re-verifies
// the credential on every call and never trusts an earlier middleware
// decision, since the two may run in different execution contexts.
package authz

import (
	"context"

	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
	apperrors "github.com/teamboard/teamboard/internal/errors"
	"github.com/teamboard/teamboard/internal/ports"
)

const (
	// LoginPath is the redirect target for unauthenticated page requests.
	LoginPath = "/login"
	// HomePath is the redirect target for authenticated but under-privileged
	// page requests.
	HomePath = "/"
)

// Gate enforces access-control policy. The credential is passed explicitly
// into every call; the gate holds no per-request state.
type Gate struct {
	resolver ports.SessionResolver
}

// NewGate constructs a Gate around a session resolver.
func NewGate(resolver ports.SessionResolver) *Gate {
	return &Gate{resolver: resolver}
}

// RequireAuth resolves the credential and returns the authenticated user, or
// an unauthorized (401) error when no identity resolves. Callers that want to
// shape the HTTP response themselves use this directly.
func (g *Gate) RequireAuth(ctx context.Context, credential string) (*domainauth.User, error) {
	user := g.resolver.Resolve(ctx, credential)
	if user == nil {
		return nil, apperrors.Unauthorized("Unauthorized: Please log in")
	}
	return user, nil
}

// RequireAdmin requires an authenticated admin. Authentication is always
// checked first: an anonymous caller gets 401, never 403.
func (g *Gate) RequireAdmin(ctx context.Context, credential string) (*domainauth.User, error) {
	user, err := g.RequireAuth(ctx, credential)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, apperrors.Forbidden("Forbidden: Admin access required")
	}
	return user, nil
}

// IsAdmin reports whether the credential resolves to an admin. It never
// fails; an anonymous or non-admin caller is simply false. Use for
// conditional rendering where a hard failure would be inappropriate.
func (g *Gate) IsAdmin(ctx context.Context, credential string) bool {
	user := g.resolver.Resolve(ctx, credential)
	return user != nil && user.IsAdmin()
}

// RequireAdminPage is the page-render variant of RequireAdmin. Instead of
// surfacing an authorization error to the renderer it returns a redirect
// target: LoginPath when unauthenticated, HomePath when authenticated but not
// admin. Any other error propagates unchanged with an empty redirect.
func (g *Gate) RequireAdminPage(ctx context.Context, credential string) (user *domainauth.User, redirect string, err error) {
	user, err = g.RequireAdmin(ctx, credential)
	if err == nil {
		return user, "", nil
	}
	redirect, err = redirectForError(err)
	return nil, redirect, err
}

// redirectForError translates an authorization failure into a redirect
// target. Non-authorization errors pass through untouched so a page never
// converts an unrelated failure into a redirect.
func redirectForError(err error) (string, error) {
	switch {
	case apperrors.IsUnauthorized(err):
		return LoginPath, nil
	case apperrors.IsForbidden(err):
		return HomePath, nil
	default:
		return "", err
	}
}
