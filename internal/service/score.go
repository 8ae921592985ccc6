package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/metrics"
)

var ErrScoreOutOfRange = errors.New("score must be between 0 and 100")

type ScoreRepository interface {
	FindByActivityID(ctx context.Context, activityID uint) ([]domain.ScoreEntry, error)
	ReplaceForActivity(ctx context.Context, activityID uint, entries []domain.ScoreEntry) (int, error)
	RankingForProgram(ctx context.Context, programID uint) ([]domain.RankingRow, error)
}

type ScoreService struct {
	repo        ScoreRepository
	programRepo ProgramRepository
}

func NewScoreService(repo ScoreRepository, programRepo ProgramRepository) *ScoreService {
	return &ScoreService{
		repo:        repo,
		programRepo: programRepo,
	}
}

func (s *ScoreService) GetScoresForActivity(ctx context.Context, activityID uint) ([]domain.ScoreEntry, error) {
	if _, err := s.programRepo.FindActivityByID(ctx, activityID); err != nil {
		return nil, fmt.Errorf("s.programRepo.FindActivityByID -> %w", err)
	}

	entries, err := s.repo.FindByActivityID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByActivityID -> %w", err)
	}

	return entries, nil
}

// SaveScores replaces the activity's whole score set with the submitted one.
// A score of 0 means the unit did not participate, so zero entries are dropped
// before the write. Submitting the same set twice persists the same state and
// reports the same count.
func (s *ScoreService) SaveScores(ctx context.Context, activityID uint, entries []domain.ScoreEntry) (int, error) {
	if _, err := s.programRepo.FindActivityByID(ctx, activityID); err != nil {
		return 0, fmt.Errorf("s.programRepo.FindActivityByID -> %w", err)
	}

	scored := make([]domain.ScoreEntry, 0, len(entries))
	for _, e := range entries {
		if e.Score < 0 || e.Score > 100 {
			return 0, ErrScoreOutOfRange
		}
		if e.Score == 0 {
			continue
		}
		scored = append(scored, e)
	}

	count, err := s.repo.ReplaceForActivity(ctx, activityID, scored)
	if err != nil {
		return 0, fmt.Errorf("s.repo.ReplaceForActivity -> %w", err)
	}

	metrics.ScoreSaves.Inc()

	return count, nil
}
