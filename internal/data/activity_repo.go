package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/teamboard/teamboard/internal/data/pgxutil"
	"github.com/teamboard/teamboard/internal/domain/model"
	apperrors "github.com/teamboard/teamboard/internal/errors"
)

const (
	defaultActivitiesLimit = 50
	maxActivitiesLimit     = 200
)

// ActivityRepo provides database operations for activities.
type ActivityRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewActivityRepo creates a new ActivityRepo with real time provider.
func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewActivityRepoWithTimeProvider creates a new ActivityRepo with a custom time provider (useful for tests).
func NewActivityRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ActivityRepo {
	return &ActivityRepo{DB: db, timeProvider: tp}
}

// Create inserts a new activity.
func (r *ActivityRepo) Create(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error) {
	if req == nil {
		return nil, errors.New("create activity request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Activity
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		row := conn.QueryRow(ctx, `
			INSERT INTO activities (id, user_id, title, body, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, user_id, title, body, created_at`,
			uuid.New().String(),
			req.UserID,
			req.Title,
			req.Body,
			now,
		)
		return row.Scan(&out.ID, &out.UserID, &out.Title, &out.Body, &out.CreatedAt)
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List returns activities newest-first.
func (r *ActivityRepo) List(ctx context.Context, opts model.ActivitiesListOptions) ([]model.Activity, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultActivitiesLimit
	}
	if limit > maxActivitiesLimit {
		limit = maxActivitiesLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	var out []model.Activity
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, user_id, title, body, created_at
			FROM activities
			ORDER BY created_at DESC, id
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var a model.Activity
			if scanErr := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Body, &a.CreatedAt); scanErr != nil {
				return scanErr
			}
			out = append(out, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// Count returns the number of activities.
func (r *ActivityRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&n)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return n, nil
}
