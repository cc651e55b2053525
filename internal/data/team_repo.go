package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/teamboard/teamboard/internal/data/pgxutil"
	"github.com/teamboard/teamboard/internal/domain/model"
	apperrors "github.com/teamboard/teamboard/internal/errors"
)

// TeamRepo provides database operations for the team directory.
type TeamRepo struct {
	DB *sql.DB
}

// NewTeamRepo creates a new TeamRepo.
func NewTeamRepo(db *sql.DB) *TeamRepo {
	return &TeamRepo{DB: db}
}

// List returns all team members ordered by name.
func (r *TeamRepo) List(ctx context.Context) ([]model.TeamMember, error) {
	var out []model.TeamMember
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, user_id, name, title, email, created_at
			FROM team_members
			ORDER BY name`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var m model.TeamMember
			if scanErr := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Title, &m.Email, &m.CreatedAt); scanErr != nil {
				return scanErr
			}
			out = append(out, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// Count returns the number of team members.
func (r *TeamRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&n)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return n, nil
}
