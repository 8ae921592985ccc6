package repository

import (
	"context"
	"fmt"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/repository/dao"
)

var ErrGoldenBookEntryNotFound = dao.ErrGoldenBookEntryNotFound

type GoldenBookDAO interface {
	Insert(ctx context.Context, entry dao.GoldenBookEntry) (dao.GoldenBookEntry, error)
	FindAll(ctx context.Context) ([]dao.GoldenBookEntry, error)
	FindByID(ctx context.Context, id uint) (dao.GoldenBookEntry, error)
	Update(ctx context.Context, entry dao.GoldenBookEntry) (dao.GoldenBookEntry, error)
	Delete(ctx context.Context, id uint) error
}

type GoldenBookRepository struct {
	dao GoldenBookDAO
}

func NewGoldenBookRepository(dao GoldenBookDAO) *GoldenBookRepository {
	return &GoldenBookRepository{
		dao: dao,
	}
}

func (r *GoldenBookRepository) Create(ctx context.Context, entry domain.GoldenBookEntry) (domain.GoldenBookEntry, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(entry))
	if err != nil {
		return domain.GoldenBookEntry{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *GoldenBookRepository) FindAll(ctx context.Context) ([]domain.GoldenBookEntry, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	entries := make([]domain.GoldenBookEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, r.daoToDomain(e))
	}

	return entries, nil
}

func (r *GoldenBookRepository) FindByID(ctx context.Context, id uint) (domain.GoldenBookEntry, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.GoldenBookEntry{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GoldenBookRepository) Update(ctx context.Context, entry domain.GoldenBookEntry) (domain.GoldenBookEntry, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(entry))
	if err != nil {
		return domain.GoldenBookEntry{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *GoldenBookRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *GoldenBookRepository) domainToDao(e domain.GoldenBookEntry) dao.GoldenBookEntry {
	return dao.GoldenBookEntry{
		ID:         e.ID,
		Title:      e.Title,
		Body:       e.Body,
		EventDate:  e.EventDate,
		AuthorName: e.AuthorName,
	}
}

func (r *GoldenBookRepository) daoToDomain(e dao.GoldenBookEntry) domain.GoldenBookEntry {
	return domain.GoldenBookEntry{
		ID:         e.ID,
		Title:      e.Title,
		Body:       e.Body,
		EventDate:  e.EventDate,
		AuthorName: e.AuthorName,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
