package data

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/teamboard/teamboard/internal/data/pgxutil"
	"github.com/teamboard/teamboard/internal/domain/model"
	apperrors "github.com/teamboard/teamboard/internal/errors"
)

const userColumns = `id, username, name, role, password_hash, created_at, updated_at`

// UserRepo provides database operations for Teamboard accounts.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// Create inserts a new user. The caller is responsible for hashing the
// password; this layer never sees plaintext.
func (r *UserRepo) Create(ctx context.Context, req *model.CreateUserRequest, passwordHash string) (*model.User, error) {
	if req == nil {
		return nil, errors.New("create user request is required")
	}
	if passwordHash == "" {
		return nil, errors.New("password hash is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		row := conn.QueryRow(ctx, `
			INSERT INTO users (id, username, name, role, password_hash, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING `+userColumns,
			uuid.New().String(),
			req.Username,
			req.Name,
			req.Role,
			passwordHash,
			now,
		)
		return scanUser(row, &out)
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// FindByID returns the user with the given ID.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, apperrors.NotFound("user not found")
	}
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByUsername returns the user with the given login name. The lookup is
// case-insensitive; usernames are stored lowercase.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	username = model.NormalizeUsername(username)
	if username == "" {
		return nil, apperrors.NotFound("user not found")
	}
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// List returns all users ordered by username.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	var out []model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY username`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var u model.User
			if scanErr := scanUser(rows, &u); scanErr != nil {
				return scanErr
			}
			out = append(out, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// Count returns the number of users.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return n, nil
}

// DeleteByRole removes all users holding the given role and returns how many
// were deleted. Used by admin seeding to replace existing admin accounts.
func (r *UserRepo) DeleteByRole(ctx context.Context, role string) (int64, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return 0, errors.New("role is required")
	}

	var deleted int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, execErr := conn.Exec(ctx, `DELETE FROM users WHERE role = $1`, role)
		if execErr != nil {
			return execErr
		}
		deleted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return deleted, nil
}

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Username,
		&u.Name,
		&u.Role,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return scanUser(conn.QueryRow(ctx, query, arg), &out)
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
