//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/teamboard/teamboard/internal/errors"
)

const (
	maxActivityTitleLen = 255
	maxActivityBodyLen  = 4000
)

// Activity is a team activity entry shown on the activities view.
type Activity struct {
	ID        string    `json:"id"         db:"id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	Title     string    `json:"title"      db:"title"`
	Body      string    `json:"body"       db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ActivitiesListOptions controls paging for listing activities.
// Results are always newest-first.
type ActivitiesListOptions struct {
	Limit  int
	Offset int
}

// CreateActivityRequest represents parameters to create an Activity.
// UserID is set by the handler from the authenticated caller, never from input.
type CreateActivityRequest struct {
	UserID string `json:"-"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Validate checks the request and trims whitespace in place.
func (r *CreateActivityRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)

	if r.UserID == "" {
		return apperrors.ValidationField("user_id", "User is required.")
	}
	if r.Title == "" {
		return apperrors.ValidationField("title", "Title is required.")
	}
	if utf8.RuneCountInString(r.Title) > maxActivityTitleLen {
		return apperrors.ValidationField("title", "Title is too long.")
	}
	if utf8.RuneCountInString(r.Body) > maxActivityBodyLen {
		return apperrors.ValidationField("body", "Body is too long.")
	}
	return nil
}
