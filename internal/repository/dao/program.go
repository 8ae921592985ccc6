package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrProgramNotFound  = errors.New("program not found")
	ErrActivityNotFound = errors.New("activity not found")
)

type Program struct {
	ID         uint      `gorm:"primaryKey"`
	StartDate  time.Time `gorm:"not null;index"`
	EndDate    time.Time `gorm:"not null"`
	Theme      string    `gorm:"not null"`
	Branch     string    `gorm:"not null;index"`
	Objectives []string  `gorm:"serializer:json"`
	Status     string    `gorm:"not null;default:'planned'"`
	LeaderName string    `gorm:"not null"`
	Notes      string
	Activities []Activity `gorm:"foreignKey:ProgramID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Activity struct {
	ID          uint   `gorm:"primaryKey"`
	ProgramID   uint   `gorm:"not null;index"`
	Position    int    `gorm:"not null"`
	Name        string `gorm:"not null"`
	Development string
	StartTime   string
	DurationMin int
	Responsible string
	Materials   []string `gorm:"serializer:json"`
	Notes       string
}

type ProgramFilter struct {
	Branch string
	From   time.Time
	To     time.Time
	Leader string
}

type ProgramDAO struct {
	db *gorm.DB
}

func NewProgramDAO(db *gorm.DB) *ProgramDAO {
	return &ProgramDAO{
		db: db,
	}
}

func (d *ProgramDAO) Insert(ctx context.Context, program Program) (Program, error) {
	for i := range program.Activities {
		program.Activities[i].Position = i + 1
	}

	result := d.db.WithContext(ctx).Create(&program)
	if result.Error != nil {
		return Program{}, result.Error
	}

	return program, nil
}

func (d *ProgramDAO) FindByID(ctx context.Context, id uint) (Program, error) {
	var program Program

	result := d.db.WithContext(ctx).
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("activities.position ASC")
		}).
		First(&program, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Program{}, ErrProgramNotFound
		}

		return Program{}, result.Error
	}

	return program, nil
}

func (d *ProgramDAO) Find(ctx context.Context, filter ProgramFilter) ([]Program, error) {
	query := d.db.WithContext(ctx).
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("activities.position ASC")
		}).
		Order("start_date DESC")

	if filter.Branch != "" {
		query = query.Where("branch = ?", filter.Branch)
	}
	if !filter.From.IsZero() {
		query = query.Where("start_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("start_date <= ?", filter.To)
	}
	if filter.Leader != "" {
		query = query.Where("leader_name ILIKE ?", "%"+filter.Leader+"%")
	}

	var programs []Program
	if result := query.Find(&programs); result.Error != nil {
		return nil, result.Error
	}

	return programs, nil
}

// Update is a full replace: program fields are overwritten and the activity
// list is deleted and re-inserted in one transaction, renumbering positions.
func (d *ProgramDAO) Update(ctx context.Context, program Program) (Program, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Program
		if err := tx.First(&existing, program.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProgramNotFound
			}
			return err
		}

		activities := program.Activities
		program.Activities = nil
		if err := tx.Model(&Program{ID: program.ID}).
			Select("StartDate", "EndDate", "Theme", "Branch", "Objectives", "Status", "LeaderName", "Notes").
			Updates(&program).Error; err != nil {
			return err
		}

		if err := tx.Where("program_id = ?", program.ID).Delete(&Activity{}).Error; err != nil {
			return err
		}

		for i := range activities {
			activities[i].ID = 0
			activities[i].ProgramID = program.ID
			activities[i].Position = i + 1
		}
		if len(activities) > 0 {
			if err := tx.Create(&activities).Error; err != nil {
				return err
			}
		}
		program.Activities = activities

		return nil
	})
	if err != nil {
		return Program{}, err
	}

	return d.FindByID(ctx, program.ID)
}

// Delete removes the program together with its activities, the score entries
// of those activities and the program's attendance rows, all in one
// transaction.
func (d *ProgramDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Program{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProgramNotFound
		}

		if err := tx.Where("activity_id IN (?)",
			tx.Model(&Activity{}).Select("id").Where("program_id = ?", id),
		).Delete(&ScoreEntry{}).Error; err != nil {
			return err
		}

		if err := tx.Where("program_id = ?", id).Delete(&AttendanceRecord{}).Error; err != nil {
			return err
		}

		return tx.Where("program_id = ?", id).Delete(&Activity{}).Error
	})
}

func (d *ProgramDAO) FindActivityByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}
