package repository

import (
	"context"
	"fmt"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/repository/dao"
)

var (
	ErrUnitNotFound   = dao.ErrUnitNotFound
	ErrMemberNotFound = dao.ErrMemberNotFound
)

type UnitDAO interface {
	FindByBranch(ctx context.Context, branch string) ([]dao.Unit, error)
	FindByID(ctx context.Context, id uint) (dao.Unit, error)
	FindMembersByBranch(ctx context.Context, branch string) ([]dao.Member, error)
}

type UnitRepository struct {
	dao UnitDAO
}

func NewUnitRepository(dao UnitDAO) *UnitRepository {
	return &UnitRepository{
		dao: dao,
	}
}

func (r *UnitRepository) FindByBranch(ctx context.Context, branch domain.Branch) ([]domain.Unit, error) {
	found, err := r.dao.FindByBranch(ctx, string(branch))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByBranch -> %w", err)
	}

	units := make([]domain.Unit, 0, len(found))
	for _, u := range found {
		units = append(units, r.daoToDomain(u))
	}

	return units, nil
}

func (r *UnitRepository) FindByID(ctx context.Context, id uint) (domain.Unit, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Unit{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UnitRepository) FindMembersByBranch(ctx context.Context, branch domain.Branch) ([]domain.Member, error) {
	found, err := r.dao.FindMembersByBranch(ctx, string(branch))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindMembersByBranch -> %w", err)
	}

	members := make([]domain.Member, 0, len(found))
	for _, m := range found {
		members = append(members, domain.Member{
			ID:     m.ID,
			Name:   m.Name,
			Branch: domain.Branch(m.Branch),
			UnitID: m.UnitID,
		})
	}

	return members, nil
}

func (r *UnitRepository) daoToDomain(u dao.Unit) domain.Unit {
	return domain.Unit{
		ID:     u.ID,
		Name:   u.Name,
		Color:  u.Color,
		Totem:  u.Totem,
		Branch: domain.Branch(u.Branch),
	}
}
