package repository

import (
	"context"
	"fmt"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/repository/dao"
)

var (
	ErrProgramNotFound  = dao.ErrProgramNotFound
	ErrActivityNotFound = dao.ErrActivityNotFound
)

type ProgramDAO interface {
	Insert(ctx context.Context, program dao.Program) (dao.Program, error)
	FindByID(ctx context.Context, id uint) (dao.Program, error)
	Find(ctx context.Context, filter dao.ProgramFilter) ([]dao.Program, error)
	Update(ctx context.Context, program dao.Program) (dao.Program, error)
	Delete(ctx context.Context, id uint) error
	FindActivityByID(ctx context.Context, id uint) (dao.Activity, error)
}

type ProgramRepository struct {
	dao ProgramDAO
}

func NewProgramRepository(dao ProgramDAO) *ProgramRepository {
	return &ProgramRepository{
		dao: dao,
	}
}

func (r *ProgramRepository) Create(ctx context.Context, program domain.Program) (domain.Program, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(program))
	if err != nil {
		return domain.Program{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ProgramRepository) FindByID(ctx context.Context, id uint) (domain.Program, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Program{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ProgramRepository) Find(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error) {
	found, err := r.dao.Find(ctx, dao.ProgramFilter{
		Branch: string(filter.Branch),
		From:   filter.From,
		To:     filter.To,
		Leader: filter.Leader,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	programs := make([]domain.Program, 0, len(found))
	for _, p := range found {
		programs = append(programs, r.daoToDomain(p))
	}

	return programs, nil
}

func (r *ProgramRepository) Update(ctx context.Context, program domain.Program) (domain.Program, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(program))
	if err != nil {
		return domain.Program{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ProgramRepository) FindActivityByID(ctx context.Context, id uint) (domain.Activity, error) {
	found, err := r.dao.FindActivityByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindActivityByID -> %w", err)
	}

	return r.activityDaoToDomain(found), nil
}

func (r *ProgramRepository) domainToDao(p domain.Program) dao.Program {
	activities := make([]dao.Activity, 0, len(p.Activities))
	for i, a := range p.Activities {
		activities = append(activities, dao.Activity{
			ID:          a.ID,
			ProgramID:   p.ID,
			Position:    i + 1,
			Name:        a.Name,
			Development: a.Development,
			StartTime:   a.StartTime,
			DurationMin: a.DurationMin,
			Responsible: a.Responsible,
			Materials:   a.Materials,
			Notes:       a.Notes,
		})
	}

	return dao.Program{
		ID:         p.ID,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Theme:      p.Theme,
		Branch:     string(p.Branch),
		Objectives: p.Objectives,
		Status:     string(p.Status),
		LeaderName: p.LeaderName,
		Notes:      p.Notes,
		Activities: activities,
	}
}

func (r *ProgramRepository) daoToDomain(p dao.Program) domain.Program {
	activities := make([]domain.Activity, 0, len(p.Activities))
	for _, a := range p.Activities {
		activities = append(activities, r.activityDaoToDomain(a))
	}

	objectives := p.Objectives
	if objectives == nil {
		objectives = []string{}
	}

	return domain.Program{
		ID:         p.ID,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Theme:      p.Theme,
		Branch:     domain.Branch(p.Branch),
		Objectives: objectives,
		Status:     domain.ProgramStatus(p.Status),
		LeaderName: p.LeaderName,
		Notes:      p.Notes,
		Activities: activities,
	}
}

func (r *ProgramRepository) activityDaoToDomain(a dao.Activity) domain.Activity {
	materials := a.Materials
	if materials == nil {
		materials = []string{}
	}

	return domain.Activity{
		ID:          a.ID,
		ProgramID:   a.ProgramID,
		Position:    a.Position,
		Name:        a.Name,
		Development: a.Development,
		StartTime:   a.StartTime,
		DurationMin: a.DurationMin,
		Responsible: a.Responsible,
		Materials:   materials,
		Notes:       a.Notes,
	}
}
