package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/travel_together/internal/database/dbtest"
	"github.com/festy23/travel_together/internal/user/model"
)

func newUser(username, email string) *model.User {
	return &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "Test",
		LastName:     "User",
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.New(t), zap.NewNop().Sugar())

	user := newUser("alice_01", "alice@example.com")
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("by username", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "alice_01")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByUsername(ctx, "nobody_here")
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}

func TestRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.New(t), zap.NewNop().Sugar())
	require.NoError(t, repo.Create(ctx, newUser("alice_01", "alice@example.com")))

	t.Run("same username", func(t *testing.T) {
		err := repo.Create(ctx, newUser("alice_01", "other@example.com"))
		assert.ErrorIs(t, err, model.ErrUserExists)
	})

	t.Run("same email", func(t *testing.T) {
		err := repo.Create(ctx, newUser("alice_02", "alice@example.com"))
		assert.ErrorIs(t, err, model.ErrUserExists)
	})
}

func TestRepository_Exists(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.New(t), zap.NewNop().Sugar())
	require.NoError(t, repo.Create(ctx, newUser("alice_01", "alice@example.com")))

	exists, err := repo.UsernameExists(ctx, "alice_01")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists(ctx, "bob_smith")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.EmailExists(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_ExistsDatabaseError(t *testing.T) {
	db := dbtest.New(t)
	repo := New(db, zap.NewNop().Sugar())
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.UsernameExists(context.Background(), "alice_01")
	assert.Error(t, err)
}

func TestRepository_GetProfiles(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.New(t), zap.NewNop().Sugar())
	alice := newUser("alice_01", "alice@example.com")
	bob := newUser("bob_smith", "bob@example.com")
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, bob))

	profiles, err := repo.GetProfiles(ctx, []uint64{alice.ID, bob.ID, 404})
	require.NoError(t, err)

	assert.Len(t, profiles, 2)
	assert.Equal(t, model.Profile{ID: alice.ID, Username: "alice_01", FirstName: "Test", LastName: "User"}, profiles[alice.ID])
	assert.Equal(t, "bob_smith", profiles[bob.ID].Username)

	empty, err := repo.GetProfiles(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
