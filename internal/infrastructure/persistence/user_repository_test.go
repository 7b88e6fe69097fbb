package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/identity"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/sis/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.UserModel{}))
	return db
}

func createTestUser(t *testing.T, repo *GormUserRepository, email string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(email, "John", "Doe", identity.RoleStudent)
	require.NoError(t, err)
	require.NoError(t, user.SetPassword("STU-2026-0001"))
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGormUserRepository_CreateAndFindByID(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)

	user := createTestUser(t, repo, "john@example.com")

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, "john@example.com", found.Email)
	assert.Equal(t, identity.RoleStudent, found.Role)
	assert.True(t, found.IsActive)
	assert.True(t, found.CheckPassword("STU-2026-0001"))
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	createTestUser(t, repo, "john@example.com")

	t.Run("lookup is case insensitive", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "John@Example.COM")
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", found.Email)
	})

	t.Run("unknown email returns not found", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("empty email is rejected", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "")
		assert.ErrorContains(t, err, "Email")
	})
}

func TestGormUserRepository_Update(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "john@example.com")

	// Deactivation flips a boolean to its zero value, which a naive
	// column-diff update would silently skip.
	user.Deactivate()
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
}

func TestGormUserRepository_Delete(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	t.Run("removes the user", func(t *testing.T) {
		user := createTestUser(t, repo, "john@example.com")

		require.NoError(t, repo.Delete(ctx, user.ID))

		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deleting a missing user reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
