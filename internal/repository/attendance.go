package repository

import (
	"context"
	"fmt"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/repository/dao"
)

type AttendanceDAO interface {
	FindByProgramID(ctx context.Context, programID uint) ([]dao.AttendanceRecord, error)
	BulkUpsert(ctx context.Context, records []dao.AttendanceRecord) (int, error)
}

type AttendanceRepository struct {
	dao AttendanceDAO
}

func NewAttendanceRepository(dao AttendanceDAO) *AttendanceRepository {
	return &AttendanceRepository{
		dao: dao,
	}
}

func (r *AttendanceRepository) FindByProgramID(ctx context.Context, programID uint) ([]domain.AttendanceRecord, error) {
	found, err := r.dao.FindByProgramID(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByProgramID -> %w", err)
	}

	records := make([]domain.AttendanceRecord, 0, len(found))
	for _, rec := range found {
		records = append(records, domain.AttendanceRecord{
			MemberID:  rec.MemberID,
			ProgramID: rec.ProgramID,
			Status:    domain.AttendanceStatus(rec.Status),
			Date:      rec.Date,
		})
	}

	return records, nil
}

func (r *AttendanceRepository) BulkUpsert(ctx context.Context, records []domain.AttendanceRecord) (int, error) {
	daoRecords := make([]dao.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		daoRecords = append(daoRecords, dao.AttendanceRecord{
			MemberID:  rec.MemberID,
			ProgramID: rec.ProgramID,
			Status:    string(rec.Status),
			Date:      rec.Date,
		})
	}

	count, err := r.dao.BulkUpsert(ctx, daoRecords)
	if err != nil {
		return 0, fmt.Errorf("r.dao.BulkUpsert -> %w", err)
	}

	return count, nil
}
