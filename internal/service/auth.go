package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
	"github.com/teamboard/teamboard/internal/domain/model"
	apperrors "github.com/teamboard/teamboard/internal/errors"
	"github.com/teamboard/teamboard/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Codec   ports.TokenCodec
	Users   ports.UserStore
	Limiter ports.LoginLimiter
	Logger  *slog.Logger
}

// AuthService orchestrates login and per-request identity resolution.
// There is no server-side session state: the signed token is the session.
type AuthService struct {
	codec   ports.TokenCodec
	users   ports.UserStore
	limiter ports.LoginLimiter
	logger  *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		codec:   opts.Codec,
		users:   opts.Users,
		limiter: opts.Limiter,
		logger:  logger,
	}
}

// LoginInput groups parameters for a login attempt.
type LoginInput struct {
	Username string
	Password string
	// RemoteAddr scopes the rate limiter key to the client address.
	RemoteAddr string
}

// LoginResult contains the issued token for a successful login.
type LoginResult struct {
	User  domainauth.User
	Token string
}

// invalidCredentials is deliberately uniform: callers cannot tell an unknown
// username from a wrong password.
func invalidCredentials() error {
	return apperrors.Unauthorized("Invalid username or password")
}

// Login verifies credentials and issues a session token. Failed attempts
// count against a per-username-and-address rate limit.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	username := model.NormalizeUsername(input.Username)
	if username == "" || input.Password == "" {
		return nil, apperrors.Validation("Username and password are required.")
	}

	limiterKey := username + "|" + input.RemoteAddr
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, limiterKey)
		if err != nil {
			// A limiter outage must not lock every user out; degrade to
			// allowing the attempt.
			s.logger.WarnContext(ctx, "login limiter unavailable", "error", err)
		} else if !allowed {
			return nil, apperrors.RateLimited("Too many failed login attempts. Try again later.")
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.recordFailure(ctx, limiterKey)
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.recordFailure(ctx, limiterKey)
		return nil, invalidCredentials()
	}

	if s.limiter != nil {
		if resetErr := s.limiter.Reset(ctx, limiterKey); resetErr != nil {
			s.logger.WarnContext(ctx, "login limiter reset failed", "error", resetErr)
		}
	}

	authUser := toAuthUser(user)
	signed, err := s.codec.Issue(authUser)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "issue session token")
	}

	return &LoginResult{User: authUser, Token: signed}, nil
}

// Resolve turns a raw session token into the authenticated user, or nil for
// anything that does not verify. The user record is re-read from the store on
// every call so role changes take effect immediately; the read is idempotent
// and side-effect-free. Resolve never returns an error: an unverifiable
// credential is indistinguishable from an absent one.
func (s *AuthService) Resolve(ctx context.Context, rawToken string) *domainauth.User {
	claims, ok := s.codec.Verify(rawToken)
	if !ok {
		return nil
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil
	}

	resolved := toAuthUser(user)
	return &resolved
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) recordFailure(ctx context.Context, key string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "login limiter record failed", "error", err)
	}
}

func toAuthUser(u *model.User) domainauth.User {
	return domainauth.User{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     domainauth.ParseRole(u.Role),
	}
}

// tokenTTL is implemented by the concrete codec; handlers use it for cookie
// MaxAge without depending on the codec type.
type tokenTTL interface{ TTL() time.Duration }

// TokenTTL returns the configured token lifetime, or zero when the codec does
// not expose one (session cookie).
func (s *AuthService) TokenTTL() time.Duration {
	if c, ok := s.codec.(tokenTTL); ok {
		return c.TTL()
	}
	return 0
}
