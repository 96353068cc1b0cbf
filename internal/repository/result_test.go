package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResultRepository(t *testing.T) (context.Context, ResultRepository) {
	t.Helper()

	ctx := context.Background()

	st, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	require.NoError(t, st.Init(ctx))

	return ctx, NewResultRepository(st.Connection)
}

func TestResultRepository_SaveAndList(t *testing.T) {
	ctx, repo := newResultRepository(t)

	// Given: two finished games for the same player
	older := &entity.Result{
		GameID:     "g1",
		Type:       entity.WithBotType,
		Difficulty: entity.HardDifficulty,
		Winner:     entity.PlayerTie,
		PlayerX:    "p1",
		PlayerO:    "bot:g1",
		FinishedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	newer := &entity.Result{
		GameID:     "g2",
		Type:       entity.PrivateType,
		Winner:     entity.PlayerO,
		PlayerX:    "p2",
		PlayerO:    "p1",
		FinishedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	// When: listing the player's results
	results, err := repo.ListByPlayer(ctx, "p1", 10)

	// Then: both come back, newest first
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, newer, results[0])
	assert.Equal(t, older, results[1])
}

func TestResultRepository_ListByPlayer(t *testing.T) {
	t.Run("Respects the limit", func(t *testing.T) {
		ctx, repo := newResultRepository(t)

		for _, id := range []string{"a", "b", "c"} {
			require.NoError(t, repo.Save(ctx, &entity.Result{
				GameID:     id,
				Type:       entity.WithBotType,
				Winner:     entity.PlayerX,
				PlayerX:    "p1",
				FinishedAt: time.Now(),
			}))
		}

		results, err := repo.ListByPlayer(ctx, "p1", 2)

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("Returns an empty list for unknown players", func(t *testing.T) {
		ctx, repo := newResultRepository(t)

		results, err := repo.ListByPlayer(ctx, "nobody", 10)

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestResultRepository_ReusedGameID(t *testing.T) {
	ctx, repo := newResultRepository(t)

	// Given: two games that were given the same id at different times
	first := &entity.Result{
		GameID:     "12345678",
		Type:       entity.PrivateType,
		Winner:     entity.PlayerX,
		PlayerX:    "alice",
		PlayerO:    "bob",
		FinishedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	second := &entity.Result{
		GameID:     "12345678",
		Type:       entity.WithBotType,
		Difficulty: entity.EasyDifficulty,
		Winner:     entity.PlayerO,
		PlayerX:    "carol",
		PlayerO:    "bot:12345678",
		FinishedAt: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
	}

	// When: both results are saved
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	// Then: the earlier player's history is kept
	aliceResults, err := repo.ListByPlayer(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, aliceResults, 1)
	assert.Equal(t, first, aliceResults[0])

	carolResults, err := repo.ListByPlayer(ctx, "carol", 10)
	require.NoError(t, err)
	require.Len(t, carolResults, 1)
	assert.Equal(t, second, carolResults[0])
}
