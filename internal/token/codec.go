// Package token implements the session token codec: issuing and verifying
// the signed, time-bound credential stored in the "token" cookie.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
)

// signingMethod is pinned so a forged token cannot downgrade verification
// (e.g., alg=none).
var signingMethod = jwt.SigningMethodHS256

// Config groups the inputs for a Codec. The secret is injected explicitly at
// construction and never mutated afterwards.
type Config struct {
	Secret string
	TTL    time.Duration
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Codec signs and verifies session tokens. Verification is pure: a function
// of (token string, secret, clock) with no I/O.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec constructs a Codec from Config.
func NewCodec(cfg Config) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Codec{secret: []byte(cfg.Secret), ttl: ttl, now: now}, nil
}

// sessionClaims is the wire shape of the token payload.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for the given user, valid from now
// until now+TTL.
func (c *Codec) Issue(user domainauth.User) (string, error) {
	if user.ID == "" {
		return "", errors.New("token: user ID is required")
	}

	issuedAt := c.now()
	claims := sessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify validates a session token and returns its claims.
//
// All failure modes collapse to (nil, false): malformed input, a wrong or
// missing signature, and expiry are indistinguishable to callers, exactly as
// an absent token would be. A token stops verifying at its expiry instant
// (valid strictly before ExpiresAt). Verify never panics and performs no I/O.
func (c *Codec) Verify(raw string) (*domainauth.Claims, bool) {
	if raw == "" {
		return nil, false
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || claims.Subject == "" {
		return nil, false
	}

	out := &domainauth.Claims{
		Subject: claims.Subject,
		Role:    domainauth.ParseRole(claims.Role),
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, true
}

// TTL returns the configured token lifetime (used for cookie MaxAge).
func (c *Codec) TTL() time.Duration { return c.ttl }
