package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/repository"
)

type stubUnitRepo struct {
	units   []domain.Unit
	members []domain.Member
}

func (s *stubUnitRepo) FindByBranch(_ context.Context, _ domain.Branch) ([]domain.Unit, error) {
	return s.units, nil
}

func (s *stubUnitRepo) FindByID(_ context.Context, id uint) (domain.Unit, error) {
	for _, u := range s.units {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.Unit{}, repository.ErrUnitNotFound
}

func (s *stubUnitRepo) FindMembersByBranch(_ context.Context, _ domain.Branch) ([]domain.Member, error) {
	return s.members, nil
}

type stubAttendanceRepo struct {
	records []domain.AttendanceRecord

	lastBatch []domain.AttendanceRecord
}

func (s *stubAttendanceRepo) FindByProgramID(_ context.Context, _ uint) ([]domain.AttendanceRecord, error) {
	return s.records, nil
}

func (s *stubAttendanceRepo) BulkUpsert(_ context.Context, records []domain.AttendanceRecord) (int, error) {
	s.lastBatch = records
	return len(records), nil
}

func newAttendanceService() (*AttendanceService, *stubAttendanceRepo) {
	attendanceRepo := &stubAttendanceRepo{}
	unitRepo := &stubUnitRepo{
		members: []domain.Member{
			{ID: 1, Name: "Ana", Branch: domain.BranchTropa},
			{ID: 2, Name: "Bruno", Branch: domain.BranchTropa},
			{ID: 3, Name: "Carla", Branch: domain.BranchTropa},
		},
	}
	programRepo := &stubProgramRepo{
		programs: map[uint]domain.Program{
			1: {
				ID:        1,
				Branch:    domain.BranchTropa,
				StartDate: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	return NewAttendanceService(attendanceRepo, unitRepo, programRepo), attendanceRepo
}

func TestAttendanceService_RosterForProgram(t *testing.T) {
	t.Run("defaults unsaved members to presente", func(t *testing.T) {
		svc, attendanceRepo := newAttendanceService()
		attendanceRepo.records = []domain.AttendanceRecord{
			{MemberID: 2, ProgramID: 1, Status: domain.AttendanceAusente},
		}

		program := domain.Program{ID: 1, Branch: domain.BranchTropa, StartDate: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)}
		records, members, err := svc.RosterForProgram(context.Background(), program)

		require.NoError(t, err)
		require.Len(t, members, 3)
		require.Len(t, records, 3)
		assert.Equal(t, domain.AttendancePresente, records[0].Status)
		assert.Equal(t, domain.AttendanceAusente, records[1].Status)
		assert.Equal(t, domain.AttendancePresente, records[2].Status)
		assert.Equal(t, program.StartDate, records[0].Date)
	})

	t.Run("unknown program", func(t *testing.T) {
		svc, _ := newAttendanceService()

		_, _, err := svc.RosterForProgram(context.Background(), domain.Program{ID: 404, Branch: domain.BranchTropa})

		assert.ErrorIs(t, err, ErrProgramNotFound)
	})
}

func TestAttendanceService_SaveAll(t *testing.T) {
	t.Run("upserts the whole batch", func(t *testing.T) {
		svc, attendanceRepo := newAttendanceService()

		count, err := svc.SaveAll(context.Background(), []domain.AttendanceRecord{
			{MemberID: 1, ProgramID: 1, Status: domain.AttendancePresente},
			{MemberID: 2, ProgramID: 1, Status: domain.AttendanceTardanza},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Len(t, attendanceRepo.lastBatch, 2)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		svc, attendanceRepo := newAttendanceService()

		_, err := svc.SaveAll(context.Background(), []domain.AttendanceRecord{
			{MemberID: 1, ProgramID: 1, Status: "maybe"},
		})

		assert.ErrorIs(t, err, ErrInvalidAttendanceStatus)
		assert.Nil(t, attendanceRepo.lastBatch)
	})
}

func TestAttendanceService_AttendanceForProgram(t *testing.T) {
	svc, attendanceRepo := newAttendanceService()
	attendanceRepo.records = []domain.AttendanceRecord{
		{MemberID: 1, ProgramID: 1, Status: domain.AttendanceTardanza},
		{MemberID: 3, ProgramID: 1, Status: domain.AttendanceAusente},
	}

	statuses, err := svc.AttendanceForProgram(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, map[uint]domain.AttendanceStatus{
		1: domain.AttendanceTardanza,
		3: domain.AttendanceAusente,
	}, statuses)
}
