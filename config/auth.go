package config

import (
	"errors"
	"time"
)

// AuthConfig groups authentication and session token configuration.
type AuthConfig struct {
	// JWTSecret signs session tokens. Required outside the test environment;
	// the process refuses to start without it.
	JWTSecret string `env:"JWT_SECRET"`

	// TokenTTL is the lifetime of issued session tokens.
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"8h"`

	// LoginMaxAttempts is the number of failed login attempts allowed per
	// window before the limiter blocks further attempts.
	LoginMaxAttempts int `env:"AUTH_LOGIN_MAX_ATTEMPTS" envDefault:"5"`

	// LoginAttemptWindow is the fixed window used by the login rate limiter.
	LoginAttemptWindow time.Duration `env:"AUTH_LOGIN_ATTEMPT_WINDOW" envDefault:"15m"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenTTL <= 0 {
		a.TokenTTL = 8 * time.Hour
	}
	if a.LoginMaxAttempts < 1 {
		a.LoginMaxAttempts = 5
	}
	if a.LoginAttemptWindow <= 0 {
		a.LoginAttemptWindow = 15 * time.Minute
	}
}

// Validate checks required auth configuration.
func (a *AuthConfig) Validate() error {
	if a.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}
