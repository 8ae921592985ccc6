package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/gruposcout/tropa-api/internal/domain"
)

type RankingService struct {
	repo        ScoreRepository
	programRepo ProgramRepository
}

func NewRankingService(repo ScoreRepository, programRepo ProgramRepository) *RankingService {
	return &RankingService{
		repo:        repo,
		programRepo: programRepo,
	}
}

// RankingForProgram returns the program's unit standings. The store hands the
// rows back sorted; they are re-sorted descending by total anyway (stable, so
// an already sorted input keeps its order) and positions assigned 1-based.
func (s *RankingService) RankingForProgram(ctx context.Context, programID uint) ([]domain.RankingRow, error) {
	if _, err := s.programRepo.FindByID(ctx, programID); err != nil {
		return nil, fmt.Errorf("s.programRepo.FindByID -> %w", err)
	}

	rows, err := s.repo.RankingForProgram(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.RankingForProgram -> %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows, nil
}
