//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// TeamMember is a directory entry on the team view. Team members are not
// necessarily Teamboard accounts; UserID links the two when they are.
type TeamMember struct {
	ID        string    `json:"id"                db:"id"`
	UserID    *string   `json:"user_id,omitempty" db:"user_id"`
	Name      string    `json:"name"              db:"name"`
	Title     string    `json:"title"             db:"title"`
	Email     string    `json:"email"             db:"email"`
	CreatedAt time.Time `json:"created_at"        db:"created_at"`
}
