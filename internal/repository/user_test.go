package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirp/internal/models"
)

func TestUserRepositoryLookupsFilterInactive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alex := createUser(t, db, "alex", true)
	ghost := createUser(t, db, "ghost", false)

	t.Run("GetByID returns active user", func(t *testing.T) {
		user, err := repo.GetByID(ctx, alex.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alex", user.Username)
	})

	t.Run("GetByID treats inactive as absent", func(t *testing.T) {
		user, err := repo.GetByID(ctx, ghost.ID)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByID absent id", func(t *testing.T) {
		user, err := repo.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByUsername", func(t *testing.T) {
		user, err := repo.GetByUsername(ctx, "alex")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alex.ID, user.ID)

		user, err = repo.GetByUsername(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "alex@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)

		user, err = repo.GetByEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByUsernameOrEmail matches either field", func(t *testing.T) {
		byName, err := repo.GetByUsernameOrEmail(ctx, "alex")
		require.NoError(t, err)
		require.NotNil(t, byName)

		byEmail, err := repo.GetByUsernameOrEmail(ctx, "alex@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, byName.ID, byEmail.ID)
	})

	t.Run("IsActive", func(t *testing.T) {
		active, err := repo.IsActive(ctx, alex.ID)
		require.NoError(t, err)
		assert.True(t, active)

		active, err = repo.IsActive(ctx, ghost.ID)
		require.NoError(t, err)
		assert.False(t, active)
	})
}

func TestUserRepositorySearchByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createUser(t, db, "maya", true)
	createUser(t, db, "amaya", true)
	createUser(t, db, "MAYA_backup", true)
	createUser(t, db, "maya_inactive", false)
	createUser(t, db, "unrelated", true)

	t.Run("case-insensitive substring match, active only, ordered", func(t *testing.T) {
		users, total, err := repo.SearchByUsername(ctx, "maya", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, users, 3)
		assert.Equal(t, "MAYA_backup", users[0].Username)
		assert.Equal(t, "amaya", users[1].Username)
		assert.Equal(t, "maya", users[2].Username)
	})

	t.Run("pagination window", func(t *testing.T) {
		users, total, err := repo.SearchByUsername(ctx, "maya", 2, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, users, 1)
		assert.Equal(t, "maya", users[0].Username)
	})

	t.Run("no matches", func(t *testing.T) {
		users, total, err := repo.SearchByUsername(ctx, "zzz", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, users)
	})
}

func TestUserRepositoryCreateEnforcesUniqueness(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createUser(t, db, "alex", true)

	dup := &models.User{Username: "alex", Email: "other@example.com", Password: "hashed", Active: true}
	err := repo.Create(ctx, dup)
	assert.Error(t, err)
}
