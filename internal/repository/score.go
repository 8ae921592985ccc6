package repository

import (
	"context"
	"fmt"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/repository/dao"
)

type ScoreDAO interface {
	FindByActivityID(ctx context.Context, activityID uint) ([]dao.ScoreEntry, error)
	ReplaceForActivity(ctx context.Context, activityID uint, entries []dao.ScoreEntry) (int, error)
	RankingForProgram(ctx context.Context, programID uint) ([]dao.RankingRow, error)
}

type ScoreRepository struct {
	dao ScoreDAO
}

func NewScoreRepository(dao ScoreDAO) *ScoreRepository {
	return &ScoreRepository{
		dao: dao,
	}
}

func (r *ScoreRepository) FindByActivityID(ctx context.Context, activityID uint) ([]domain.ScoreEntry, error) {
	found, err := r.dao.FindByActivityID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByActivityID -> %w", err)
	}

	entries := make([]domain.ScoreEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, domain.ScoreEntry{
			ActivityID: e.ActivityID,
			UnitID:     e.UnitID,
			Score:      e.Score,
			Note:       e.Note,
		})
	}

	return entries, nil
}

func (r *ScoreRepository) ReplaceForActivity(ctx context.Context, activityID uint, entries []domain.ScoreEntry) (int, error) {
	daoEntries := make([]dao.ScoreEntry, 0, len(entries))
	for _, e := range entries {
		daoEntries = append(daoEntries, dao.ScoreEntry{
			ActivityID: activityID,
			UnitID:     e.UnitID,
			Score:      e.Score,
			Note:       e.Note,
		})
	}

	count, err := r.dao.ReplaceForActivity(ctx, activityID, daoEntries)
	if err != nil {
		return 0, fmt.Errorf("r.dao.ReplaceForActivity -> %w", err)
	}

	return count, nil
}

func (r *ScoreRepository) RankingForProgram(ctx context.Context, programID uint) ([]domain.RankingRow, error) {
	found, err := r.dao.RankingForProgram(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.RankingForProgram -> %w", err)
	}

	rows := make([]domain.RankingRow, 0, len(found))
	for _, row := range found {
		rows = append(rows, domain.RankingRow{
			UnitID:          row.UnitID,
			UnitName:        row.UnitName,
			Color:           row.Color,
			Total:           row.Total,
			ActivitiesCount: row.ActivitiesCount,
		})
	}

	return rows, nil
}
