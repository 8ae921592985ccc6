package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRecord struct {
	ID        uint      `gorm:"primaryKey"`
	MemberID  uint      `gorm:"not null;uniqueIndex:idx_attendance_member_program"`
	ProgramID uint      `gorm:"not null;uniqueIndex:idx_attendance_member_program"`
	Status    string    `gorm:"not null"`
	Date      time.Time `gorm:"not null"`
}

type AttendanceDAO struct {
	db *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{
		db: db,
	}
}

func (d *AttendanceDAO) FindByProgramID(ctx context.Context, programID uint) ([]AttendanceRecord, error) {
	var records []AttendanceRecord

	result := d.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// BulkUpsert writes the whole batch in one statement, overwriting status and
// date on (member, program) conflicts. Returns the number of rows submitted.
func (d *AttendanceDAO) BulkUpsert(ctx context.Context, records []AttendanceRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	for i := range records {
		records[i].ID = 0
	}

	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "member_id"}, {Name: "program_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "date"}),
		}).
		Create(&records)
	if result.Error != nil {
		return 0, result.Error
	}

	return len(records), nil
}
