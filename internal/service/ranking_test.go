package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruposcout/tropa-api/internal/domain"
)

func TestRankingService_RankingForProgram(t *testing.T) {
	t.Run("assigns 1-based positions in total order", func(t *testing.T) {
		scoreRepo, programRepo := newScoreFixtures()
		scoreRepo.ranking = []domain.RankingRow{
			{UnitID: 2, UnitName: "Lobos", Total: 80, ActivitiesCount: 3},
			{UnitID: 1, UnitName: "Halcones", Total: 65, ActivitiesCount: 2},
			{UnitID: 3, UnitName: "Aguilas", Total: 40, ActivitiesCount: 1},
		}
		svc := NewRankingService(scoreRepo, programRepo)

		rows, err := svc.RankingForProgram(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, 1, rows[0].Position)
		assert.Equal(t, "Lobos", rows[0].UnitName)
		assert.Equal(t, 2, rows[1].Position)
		assert.Equal(t, 3, rows[2].Position)
	})

	t.Run("re-sorts unordered input without disturbing ties", func(t *testing.T) {
		scoreRepo, programRepo := newScoreFixtures()
		scoreRepo.ranking = []domain.RankingRow{
			{UnitID: 3, UnitName: "Aguilas", Total: 40},
			{UnitID: 2, UnitName: "Lobos", Total: 80},
			{UnitID: 1, UnitName: "Halcones", Total: 80},
		}
		svc := NewRankingService(scoreRepo, programRepo)

		rows, err := svc.RankingForProgram(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Lobos", rows[0].UnitName)
		assert.Equal(t, "Halcones", rows[1].UnitName)
		assert.Equal(t, "Aguilas", rows[2].UnitName)
		// Tied units still get distinct positions.
		assert.Equal(t, 1, rows[0].Position)
		assert.Equal(t, 2, rows[1].Position)
	})

	t.Run("unknown program", func(t *testing.T) {
		scoreRepo, programRepo := newScoreFixtures()
		svc := NewRankingService(scoreRepo, programRepo)

		_, err := svc.RankingForProgram(context.Background(), 404)

		assert.ErrorIs(t, err, ErrProgramNotFound)
	})
}
