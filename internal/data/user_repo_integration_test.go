package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/teamboard/internal/domain/model"
	apperrors "github.com/teamboard/teamboard/internal/errors"
	"github.com/teamboard/teamboard/internal/testutil"
)

func createTestUser(t *testing.T, repo *UserRepo, username, role string) *model.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &model.CreateUserRequest{
		Username: username,
		Name:     "Test " + username,
		Role:     role,
		Password: "longenough1",
	}, "$2a$04$notarealhashbutlongenoughtostore1234567890123456789012")
	require.NoError(t, err)
	return user
}

func TestUserRepo_Integration(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		fixed := NewFixedTimeProvider(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
		repo := NewUserRepoWithTimeProvider(db, fixed)

		created := createTestUser(t, repo, "JDoe", "user")
		assert.Equal(t, "jdoe", created.Username, "usernames are stored lowercase")
		assert.Equal(t, fixed.Now(), created.CreatedAt.UTC())

		byID, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Username, byID.Username)

		byName, err := repo.FindByUsername(ctx, "  JDOE ")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byName.ID)

		_, err = repo.FindByUsername(ctx, "nobody")
		assert.True(t, apperrors.IsNotFound(err))

		// Duplicate usernames map to a conflict on the username field.
		_, err = repo.Create(ctx, &model.CreateUserRequest{
			Username: "jdoe", Name: "Other", Role: "user", Password: "longenough1",
		}, "hash-hash-hash")
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
		assert.Equal(t, "username", apperrors.GetField(err))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestUserRepo_DeleteByRole_Integration(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		createTestUser(t, repo, "admin1", "admin")
		createTestUser(t, repo, "admin2", "admin")
		regular := createTestUser(t, repo, "jdoe", "user")

		removed, err := repo.DeleteByRole(ctx, "admin")
		require.NoError(t, err)
		assert.EqualValues(t, 2, removed)

		// Regular accounts are untouched.
		_, err = repo.FindByID(ctx, regular.ID)
		assert.NoError(t, err)
	})
}

func TestActivityRepo_Integration(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		userRepo := NewUserRepo(db)
		author := createTestUser(t, userRepo, "jdoe", "user")

		fixed := NewFixedTimeProvider(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
		repo := NewActivityRepoWithTimeProvider(db, fixed)

		for _, title := range []string{"first", "second", "third"} {
			_, err := repo.Create(ctx, &model.CreateActivityRequest{
				UserID: author.ID, Title: title,
			})
			require.NoError(t, err)
			fixed.AddTime(time.Minute)
		}

		listed, err := repo.List(ctx, model.ActivitiesListOptions{})
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "third", listed[0].Title, "newest first")

		page, err := repo.List(ctx, model.ActivitiesListOptions{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "second", page[0].Title)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		// Activities for an unknown author violate the user FK.
		_, err = repo.Create(ctx, &model.CreateActivityRequest{
			UserID: "missing-user", Title: "orphan",
		})
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestTeamRepo_Integration(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewTeamRepo(db)

		members, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, members)

		for _, m := range []struct{ name, email string }{
			{"Zara", "zara@example.com"},
			{"Ana", "ana@example.com"},
		} {
			_, execErr := db.ExecContext(ctx, `
				INSERT INTO team_members (id, name, title, email)
				VALUES (gen_random_uuid()::text, $1, 'Engineer', $2)`, m.name, m.email)
			require.NoError(t, execErr)
		}

		members, err = repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "Ana", members[0].Name, "ordered by name")

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
