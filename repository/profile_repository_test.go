package repository

import (
	"context"
	"testing"

	"arenaodds/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_GetByDiscordID(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewProfileRepository(testDB.DB)
	ctx := context.Background()

	t.Run("no profile found", func(t *testing.T) {
		profile, err := repo.GetByDiscordID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("profile found", func(t *testing.T) {
		original := testutil.CreateTestProfileWithWinRate(123456, "drafter", 0.62)
		err := repo.Upsert(ctx, original)
		require.NoError(t, err)

		profile, err := repo.GetByDiscordID(ctx, 123456)
		require.NoError(t, err)
		require.NotNil(t, profile)

		assert.Equal(t, int64(123456), profile.DiscordID)
		assert.Equal(t, "drafter", profile.Username)
		assert.Equal(t, 0.62, profile.WinRate)
		assert.False(t, profile.CreatedAt.IsZero())
		assert.False(t, profile.UpdatedAt.IsZero())
	})
}

func TestProfileRepository_Upsert(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewProfileRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates new profile", func(t *testing.T) {
		profile := testutil.CreateTestProfile(111, "newplayer")
		err := repo.Upsert(ctx, profile)
		require.NoError(t, err)
		assert.False(t, profile.CreatedAt.IsZero())
	})

	t.Run("updates existing profile", func(t *testing.T) {
		first := testutil.CreateTestProfileWithWinRate(222, "grinder", 0.5)
		err := repo.Upsert(ctx, first)
		require.NoError(t, err)

		second := testutil.CreateTestProfileWithWinRate(222, "grinder2", 0.7)
		err = repo.Upsert(ctx, second)
		require.NoError(t, err)

		profile, err := repo.GetByDiscordID(ctx, 222)
		require.NoError(t, err)
		require.NotNil(t, profile)

		assert.Equal(t, "grinder2", profile.Username)
		assert.Equal(t, 0.7, profile.WinRate)
		// Creation time survives the update
		assert.Equal(t, first.CreatedAt, profile.CreatedAt)
	})

	t.Run("rejects win rate outside range", func(t *testing.T) {
		profile := testutil.CreateTestProfileWithWinRate(333, "cheater", 1.5)
		err := repo.Upsert(ctx, profile)
		assert.Error(t, err)
	})
}
