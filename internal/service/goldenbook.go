package service

import (
	"context"
	"fmt"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/repository"
)

var ErrGoldenBookEntryNotFound = repository.ErrGoldenBookEntryNotFound

type GoldenBookRepository interface {
	Create(ctx context.Context, entry domain.GoldenBookEntry) (domain.GoldenBookEntry, error)
	FindAll(ctx context.Context) ([]domain.GoldenBookEntry, error)
	FindByID(ctx context.Context, id uint) (domain.GoldenBookEntry, error)
	Update(ctx context.Context, entry domain.GoldenBookEntry) (domain.GoldenBookEntry, error)
	Delete(ctx context.Context, id uint) error
}

type GoldenBookService struct {
	repo GoldenBookRepository
}

func NewGoldenBookService(repo GoldenBookRepository) *GoldenBookService {
	return &GoldenBookService{
		repo: repo,
	}
}

func (s *GoldenBookService) CreateEntry(ctx context.Context, entry domain.GoldenBookEntry) (domain.GoldenBookEntry, error) {
	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return domain.GoldenBookEntry{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *GoldenBookService) ListEntries(ctx context.Context) ([]domain.GoldenBookEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return entries, nil
}

func (s *GoldenBookService) GetEntry(ctx context.Context, id uint) (domain.GoldenBookEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.GoldenBookEntry{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return entry, nil
}

func (s *GoldenBookService) UpdateEntry(ctx context.Context, entry domain.GoldenBookEntry) (domain.GoldenBookEntry, error) {
	updated, err := s.repo.Update(ctx, entry)
	if err != nil {
		return domain.GoldenBookEntry{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *GoldenBookService) DeleteEntry(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
