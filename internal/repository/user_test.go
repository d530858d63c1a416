package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"qenea/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Integration(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	ts := time.Now().UnixNano()
	username := fmt.Sprintf("ur_user_%d", ts)
	email := fmt.Sprintf("ur_%d@example.com", ts)

	t.Run("create with profile", func(t *testing.T) {
		user := &models.User{
			Username: username,
			Email:    email,
			Password: "hashed",
			Profile:  &models.Profile{Bio: "hello"},
		}
		require.NoError(t, repo.Create(ctx, user))
		require.NotZero(t, user.ID)

		found, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Profile)
		assert.Equal(t, "hello", found.Profile.Bio)
	})

	t.Run("duplicate username maps to conflict", func(t *testing.T) {
		dup := &models.User{
			Username: username,
			Email:    fmt.Sprintf("other_%d@example.com", ts),
			Password: "hashed",
		}
		err := repo.Create(ctx, dup)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
	})

	t.Run("lookups are case-insensitive", func(t *testing.T) {
		byEmail, err := repo.GetByEmail(ctx, "UR_"+email[3:])
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, username, byEmail.Username)

		byName, err := repo.GetByUsername(ctx, "UR_USER_"+username[8:])
		require.NoError(t, err)
		require.NotNil(t, byName)

		missing, err := repo.GetByUsername(ctx, "never_registered")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}
