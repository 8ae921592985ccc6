package service

import (
	"context"
	"fmt"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/repository"
)

var (
	ErrUnitNotFound   = repository.ErrUnitNotFound
	ErrMemberNotFound = repository.ErrMemberNotFound
)

type UnitService struct {
	repo UnitRepository
}

func NewUnitService(repo UnitRepository) *UnitService {
	return &UnitService{
		repo: repo,
	}
}

func (s *UnitService) ListUnits(ctx context.Context, branch domain.Branch) ([]domain.Unit, error) {
	if !branch.IsValid() {
		return nil, ErrInvalidBranch
	}

	units, err := s.repo.FindByBranch(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByBranch -> %w", err)
	}

	return units, nil
}

func (s *UnitService) ListMembers(ctx context.Context, branch domain.Branch) ([]domain.Member, error) {
	if !branch.IsValid() {
		return nil, ErrInvalidBranch
	}

	members, err := s.repo.FindMembersByBranch(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindMembersByBranch -> %w", err)
	}

	return members, nil
}
