package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/repository"
)

var (
	ErrProgramNotFound  = repository.ErrProgramNotFound
	ErrActivityNotFound = repository.ErrActivityNotFound
	ErrInvalidBranch    = errors.New("invalid branch")
	ErrInvalidStatus    = errors.New("invalid program status")
)

type ProgramRepository interface {
	Create(ctx context.Context, program domain.Program) (domain.Program, error)
	FindByID(ctx context.Context, id uint) (domain.Program, error)
	Find(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error)
	Update(ctx context.Context, program domain.Program) (domain.Program, error)
	Delete(ctx context.Context, id uint) error
	FindActivityByID(ctx context.Context, id uint) (domain.Activity, error)
}

type ProgramService struct {
	repo ProgramRepository
}

func NewProgramService(repo ProgramRepository) *ProgramService {
	return &ProgramService{
		repo: repo,
	}
}

func (s *ProgramService) CreateProgram(ctx context.Context, program domain.Program) (domain.Program, error) {
	if !program.Branch.IsValid() {
		return domain.Program{}, ErrInvalidBranch
	}
	if program.Status == "" {
		program.Status = domain.ProgramPlanned
	}
	if !program.Status.IsValid() {
		return domain.Program{}, ErrInvalidStatus
	}

	created, err := s.repo.Create(ctx, program)
	if err != nil {
		return domain.Program{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ProgramService) GetProgram(ctx context.Context, id uint) (domain.Program, error) {
	program, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Program{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return program, nil
}

func (s *ProgramService) ListPrograms(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error) {
	if filter.Branch != "" && !filter.Branch.IsValid() {
		return nil, ErrInvalidBranch
	}

	programs, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return programs, nil
}

// UpdateProgram is a full replace, activities included.
func (s *ProgramService) UpdateProgram(ctx context.Context, program domain.Program) (domain.Program, error) {
	if !program.Branch.IsValid() {
		return domain.Program{}, ErrInvalidBranch
	}
	if !program.Status.IsValid() {
		return domain.Program{}, ErrInvalidStatus
	}

	updated, err := s.repo.Update(ctx, program)
	if err != nil {
		return domain.Program{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ProgramService) DeleteProgram(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ProgramService) GetActivity(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindActivityByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindActivityByID -> %w", err)
	}

	return activity, nil
}
