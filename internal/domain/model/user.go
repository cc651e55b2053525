//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/teamboard/teamboard/internal/errors"
)

const (
	maxUsernameLen = 64
	maxUserNameLen = 255
	minPasswordLen = 8
)

// User represents a Teamboard account as persisted in the users table.
// PasswordHash is a bcrypt hash and never leaves the data/service layers.
type User struct {
	ID           string    `json:"id"         db:"id"`
	Username     string    `json:"username"   db:"username"`
	Name         string    `json:"name"       db:"name"`
	Role         string    `json:"role"       db:"role"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateUserRequest represents parameters to create a User.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// NormalizeUsername lowercases and trims a login name. Usernames are
// case-insensitive at login time and stored lowercase.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Validate checks the request and normalizes the username in place.
func (r *CreateUserRequest) Validate() error {
	r.Username = NormalizeUsername(r.Username)
	r.Name = strings.TrimSpace(r.Name)

	if r.Username == "" {
		return apperrors.ValidationField("username", "Username is required.")
	}
	if utf8.RuneCountInString(r.Username) > maxUsernameLen {
		return apperrors.ValidationField("username", "Username is too long.")
	}
	if r.Name == "" {
		return apperrors.ValidationField("name", "Name is required.")
	}
	if utf8.RuneCountInString(r.Name) > maxUserNameLen {
		return apperrors.ValidationField("name", "Name is too long.")
	}
	if len(r.Password) < minPasswordLen {
		return apperrors.ValidationField("password", "Password must be at least 8 characters.")
	}
	if r.Role != "admin" && r.Role != "user" {
		return apperrors.ValidationField("role", "Role must be admin or user.")
	}
	return nil
}
