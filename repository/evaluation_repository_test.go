package repository

import (
	"context"
	"testing"

	"arenaodds/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationRepository_Create(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewEvaluationRepository(testDB.DB)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		eval := testutil.CreateTestEvaluation(123456, "quick_draft")

		err := repo.Create(ctx, eval)
		require.NoError(t, err)
		assert.NotZero(t, eval.ID)
		assert.False(t, eval.CreatedAt.IsZero())
	})

	t.Run("rejects win rate outside range", func(t *testing.T) {
		eval := testutil.CreateTestEvaluationWithWinRate(123456, "quick_draft", 2.0)
		err := repo.Create(ctx, eval)
		assert.Error(t, err)
	})
}

func TestEvaluationRepository_GetRecentByUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewEvaluationRepository(testDB.DB)
	ctx := context.Background()

	t.Run("no evaluations", func(t *testing.T) {
		evals, err := repo.GetRecentByUser(ctx, 42, 10)
		require.NoError(t, err)
		assert.Empty(t, evals)
	})

	t.Run("returns newest first with limit", func(t *testing.T) {
		keys := []string{"quick_draft", "premier_draft", "sealed", "trad_draft"}
		for _, key := range keys {
			eval := testutil.CreateTestEvaluation(777, key)
			require.NoError(t, repo.Create(ctx, eval))
		}

		evals, err := repo.GetRecentByUser(ctx, 777, 3)
		require.NoError(t, err)
		require.Len(t, evals, 3)

		for i := 1; i < len(evals); i++ {
			assert.False(t, evals[i].CreatedAt.After(evals[i-1].CreatedAt))
		}
	})

	t.Run("does not leak other users' history", func(t *testing.T) {
		mine := testutil.CreateTestEvaluation(1001, "sealed")
		theirs := testutil.CreateTestEvaluation(1002, "sealed")
		require.NoError(t, repo.Create(ctx, mine))
		require.NoError(t, repo.Create(ctx, theirs))

		evals, err := repo.GetRecentByUser(ctx, 1001, 10)
		require.NoError(t, err)
		require.Len(t, evals, 1)
		assert.Equal(t, int64(1001), evals[0].DiscordID)
	})
}
