package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/repository"
)

type stubProgramRepo struct {
	programs   map[uint]domain.Program
	activities map[uint]domain.Activity
}

func (s *stubProgramRepo) Create(_ context.Context, program domain.Program) (domain.Program, error) {
	return program, nil
}

func (s *stubProgramRepo) FindByID(_ context.Context, id uint) (domain.Program, error) {
	p, ok := s.programs[id]
	if !ok {
		return domain.Program{}, repository.ErrProgramNotFound
	}
	return p, nil
}

func (s *stubProgramRepo) Find(_ context.Context, _ domain.ProgramFilter) ([]domain.Program, error) {
	out := make([]domain.Program, 0, len(s.programs))
	for _, p := range s.programs {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProgramRepo) Update(_ context.Context, program domain.Program) (domain.Program, error) {
	if _, ok := s.programs[program.ID]; !ok {
		return domain.Program{}, repository.ErrProgramNotFound
	}
	return program, nil
}

func (s *stubProgramRepo) Delete(_ context.Context, id uint) error {
	if _, ok := s.programs[id]; !ok {
		return repository.ErrProgramNotFound
	}
	return nil
}

func (s *stubProgramRepo) FindActivityByID(_ context.Context, id uint) (domain.Activity, error) {
	a, ok := s.activities[id]
	if !ok {
		return domain.Activity{}, repository.ErrActivityNotFound
	}
	return a, nil
}

type stubScoreRepo struct {
	entries map[uint][]domain.ScoreEntry
	ranking []domain.RankingRow

	lastReplaced []domain.ScoreEntry
}

func (s *stubScoreRepo) FindByActivityID(_ context.Context, activityID uint) ([]domain.ScoreEntry, error) {
	return s.entries[activityID], nil
}

func (s *stubScoreRepo) ReplaceForActivity(_ context.Context, activityID uint, entries []domain.ScoreEntry) (int, error) {
	s.lastReplaced = entries
	if s.entries == nil {
		s.entries = make(map[uint][]domain.ScoreEntry)
	}
	s.entries[activityID] = entries
	return len(entries), nil
}

func (s *stubScoreRepo) RankingForProgram(_ context.Context, _ uint) ([]domain.RankingRow, error) {
	return s.ranking, nil
}

func newScoreFixtures() (*stubScoreRepo, *stubProgramRepo) {
	return &stubScoreRepo{}, &stubProgramRepo{
		programs: map[uint]domain.Program{
			1: {ID: 1, Branch: domain.BranchTropa},
		},
		activities: map[uint]domain.Activity{
			10: {ID: 10, ProgramID: 1},
		},
	}
}

func TestScoreService_SaveScores(t *testing.T) {
	t.Run("drops zero scores before the write", func(t *testing.T) {
		scoreRepo, programRepo := newScoreFixtures()
		svc := NewScoreService(scoreRepo, programRepo)

		count, err := svc.SaveScores(context.Background(), 10, []domain.ScoreEntry{
			{ActivityID: 10, UnitID: 1, Score: 50},
			{ActivityID: 10, UnitID: 2, Score: 0},
			{ActivityID: 10, UnitID: 3, Score: 100},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		require.Len(t, scoreRepo.lastReplaced, 2)
		assert.Equal(t, uint(1), scoreRepo.lastReplaced[0].UnitID)
		assert.Equal(t, uint(3), scoreRepo.lastReplaced[1].UnitID)
	})

	t.Run("saving twice reports the same count", func(t *testing.T) {
		scoreRepo, programRepo := newScoreFixtures()
		svc := NewScoreService(scoreRepo, programRepo)
		entries := []domain.ScoreEntry{
			{ActivityID: 10, UnitID: 1, Score: 50},
			{ActivityID: 10, UnitID: 2, Score: 70},
		}

		first, err := svc.SaveScores(context.Background(), 10, entries)
		require.NoError(t, err)
		second, err := svc.SaveScores(context.Background(), 10, entries)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("rejects scores outside 0 to 100", func(t *testing.T) {
		scoreRepo, programRepo := newScoreFixtures()
		svc := NewScoreService(scoreRepo, programRepo)

		_, err := svc.SaveScores(context.Background(), 10, []domain.ScoreEntry{
			{ActivityID: 10, UnitID: 1, Score: 101},
		})

		assert.ErrorIs(t, err, ErrScoreOutOfRange)
		assert.Nil(t, scoreRepo.lastReplaced)
	})

	t.Run("unknown activity", func(t *testing.T) {
		scoreRepo, programRepo := newScoreFixtures()
		svc := NewScoreService(scoreRepo, programRepo)

		_, err := svc.SaveScores(context.Background(), 404, nil)

		assert.ErrorIs(t, err, ErrActivityNotFound)
	})
}

func TestScoreService_GetScoresForActivity(t *testing.T) {
	scoreRepo, programRepo := newScoreFixtures()
	scoreRepo.entries = map[uint][]domain.ScoreEntry{
		10: {{ActivityID: 10, UnitID: 1, Score: 40}},
	}
	svc := NewScoreService(scoreRepo, programRepo)

	entries, err := svc.GetScoresForActivity(context.Background(), 10)

	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = svc.GetScoresForActivity(context.Background(), 404)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}
