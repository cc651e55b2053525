// Package devseed provisions the initial admin account and, for development
// environments, a small set of sample data.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teamboard/teamboard/internal/data"
	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
	"github.com/teamboard/teamboard/internal/domain/model"
	apperrors "github.com/teamboard/teamboard/internal/errors"
	"github.com/teamboard/teamboard/internal/service"
)

// Default credentials for the provisioned admin account. The password is
// meant to be rotated immediately after first login.
const (
	AdminUsername = "admin.mpc"
	AdminPassword = "Admin1@MPC"
	AdminName     = "MPC Administrator"
)

// SeedAdmin removes any existing admin accounts and creates the default one.
// The reset-then-create shape makes the operation a recovery tool as well: a
// locked-out deployment gets back a known admin login.
func SeedAdmin(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	repo := data.NewUserRepo(db)

	removed, err := repo.DeleteByRole(ctx, string(domainauth.RoleAdmin))
	if err != nil {
		return fmt.Errorf("delete existing admins: %w", err)
	}
	if removed > 0 {
		logger.InfoContext(ctx, "removed existing admin accounts", "count", removed)
	}

	hash, err := service.HashPassword(AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user, err := repo.Create(ctx, &model.CreateUserRequest{
		Username: AdminUsername,
		Name:     AdminName,
		Role:     string(domainauth.RoleAdmin),
		Password: AdminPassword,
	}, hash)
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.InfoContext(ctx, "admin account provisioned", "username", user.Username, "id", user.ID)
	return nil
}

// SeedSampleData inserts a handful of team members and activities so a fresh
// development database has something to render. Existing rows are left alone;
// conflicts on re-runs are ignored.
func SeedSampleData(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	admin, err := data.NewUserRepo(db).FindByUsername(ctx, AdminUsername)
	if err != nil {
		return fmt.Errorf("find admin for sample data: %w", err)
	}

	teamRepo := data.NewTeamRepo(db)
	existing, err := teamRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count team members: %w", err)
	}
	if existing > 0 {
		logger.InfoContext(ctx, "sample data skipped, team roster is not empty", "count", existing)
		return nil
	}

	members := []struct{ name, title, email string }{
		{"Jane Rivera", "Engineering Lead", "jane.rivera@example.com"},
		{"Sam Okafor", "Product Manager", "sam.okafor@example.com"},
		{"Priya Nair", "Designer", "priya.nair@example.com"},
	}
	for _, m := range members {
		if err := insertTeamMember(ctx, db, m.name, m.title, m.email); err != nil {
			return fmt.Errorf("seed team member %s: %w", m.email, err)
		}
	}

	activityRepo := data.NewActivityRepo(db)
	activities := []struct{ title, body string }{
		{"Welcome to Teamboard", "This board tracks what the team is up to."},
		{"Sprint 12 kicked off", "Planning notes are in the shared drive."},
	}
	for _, a := range activities {
		if _, err := activityRepo.Create(ctx, &model.CreateActivityRequest{
			UserID: admin.ID,
			Title:  a.title,
			Body:   a.body,
		}); err != nil {
			return fmt.Errorf("seed activity %q: %w", a.title, err)
		}
	}

	logger.InfoContext(ctx, "sample data seeded",
		"team_members", len(members), "activities", len(activities))
	return nil
}

func insertTeamMember(ctx context.Context, db *sql.DB, name, title, email string) error {
	const query = `
		INSERT INTO team_members (id, name, title, email, created_at)
		VALUES ($1, $2, $3, $4, now())`
	if _, err := db.ExecContext(ctx, query, uuid.NewString(), name, title, email); err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}
