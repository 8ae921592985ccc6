package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/metrics"
)

var ErrInvalidAttendanceStatus = errors.New("invalid attendance status")

type AttendanceRepository interface {
	FindByProgramID(ctx context.Context, programID uint) ([]domain.AttendanceRecord, error)
	BulkUpsert(ctx context.Context, records []domain.AttendanceRecord) (int, error)
}

type UnitRepository interface {
	FindByBranch(ctx context.Context, branch domain.Branch) ([]domain.Unit, error)
	FindByID(ctx context.Context, id uint) (domain.Unit, error)
	FindMembersByBranch(ctx context.Context, branch domain.Branch) ([]domain.Member, error)
}

type AttendanceService struct {
	repo        AttendanceRepository
	unitRepo    UnitRepository
	programRepo ProgramRepository
}

func NewAttendanceService(repo AttendanceRepository, unitRepo UnitRepository, programRepo ProgramRepository) *AttendanceService {
	return &AttendanceService{
		repo:        repo,
		unitRepo:    unitRepo,
		programRepo: programRepo,
	}
}

// AttendanceForProgram returns the saved records as member_id -> status.
func (s *AttendanceService) AttendanceForProgram(ctx context.Context, programID uint) (map[uint]domain.AttendanceStatus, error) {
	if _, err := s.programRepo.FindByID(ctx, programID); err != nil {
		return nil, fmt.Errorf("s.programRepo.FindByID -> %w", err)
	}

	records, err := s.repo.FindByProgramID(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByProgramID -> %w", err)
	}

	statuses := make(map[uint]domain.AttendanceStatus, len(records))
	for _, rec := range records {
		statuses[rec.MemberID] = rec.Status
	}

	return statuses, nil
}

// RosterForProgram merges the branch roster with the program's saved records.
// Members without a saved record default to presente, which matches the common
// case that most members attend.
func (s *AttendanceService) RosterForProgram(ctx context.Context, program domain.Program) ([]domain.AttendanceRecord, []domain.Member, error) {
	members, err := s.unitRepo.FindMembersByBranch(ctx, program.Branch)
	if err != nil {
		return nil, nil, fmt.Errorf("s.unitRepo.FindMembersByBranch -> %w", err)
	}

	saved, err := s.AttendanceForProgram(ctx, program.ID)
	if err != nil {
		return nil, nil, err
	}

	records := make([]domain.AttendanceRecord, 0, len(members))
	for _, m := range members {
		status := domain.AttendancePresente
		if prior, ok := saved[m.ID]; ok {
			status = prior
		}
		records = append(records, domain.AttendanceRecord{
			MemberID:  m.ID,
			ProgramID: program.ID,
			Status:    status,
			Date:      program.StartDate,
		})
	}

	return records, members, nil
}

// SaveAll writes the whole batch as one upsert. No partial rollback: the
// underlying write is a single statement.
func (s *AttendanceService) SaveAll(ctx context.Context, records []domain.AttendanceRecord) (int, error) {
	for _, rec := range records {
		if !rec.Status.IsValid() {
			return 0, ErrInvalidAttendanceStatus
		}
	}

	count, err := s.repo.BulkUpsert(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("s.repo.BulkUpsert -> %w", err)
	}

	metrics.AttendanceSaves.Inc()

	return count, nil
}
