// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/data; orchestration
// in internal/service.
package ports

import (
	"context"

	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
	"github.com/teamboard/teamboard/internal/domain/model"
)

// TokenCodec issues and verifies session tokens.
//
// Verify collapses every failure mode (malformed input, bad signature,
// expiry) to ok=false so callers can never distinguish an invalid credential
// from an absent one.
type TokenCodec interface {
	Issue(user domainauth.User) (string, error)
	Verify(raw string) (claims *domainauth.Claims, ok bool)
}

// TokenVerifier is the verification-only subset of TokenCodec, used by the
// route middleware, which never issues tokens.
type TokenVerifier interface {
	Verify(raw string) (claims *domainauth.Claims, ok bool)
}

// UserStore reads user records. Both lookups are idempotent and
// side-effect-free; Resolve may call FindByID on every request.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// LoginLimiter guards the login endpoint against credential stuffing.
// Keys identify an attempt source (username plus client address).
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted for the key.
	Allow(ctx context.Context, key string) (bool, error)
	// RecordFailure counts a failed attempt against the key.
	RecordFailure(ctx context.Context, key string) error
	// Reset clears the counter for the key after a successful login.
	Reset(ctx context.Context, key string) error
}

// SessionResolver turns a request credential into the authenticated user.
// A nil result means anonymous; resolution never fails with an error.
type SessionResolver interface {
	Resolve(ctx context.Context, rawToken string) *domainauth.User
}
