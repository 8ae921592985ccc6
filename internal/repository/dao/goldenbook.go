package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrGoldenBookEntryNotFound = errors.New("golden book entry not found")

type GoldenBookEntry struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"not null"`
	Body       string    `gorm:"not null"`
	EventDate  time.Time `gorm:"not null;index"`
	AuthorName string    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type GoldenBookDAO struct {
	db *gorm.DB
}

func NewGoldenBookDAO(db *gorm.DB) *GoldenBookDAO {
	return &GoldenBookDAO{
		db: db,
	}
}

func (d *GoldenBookDAO) Insert(ctx context.Context, entry GoldenBookEntry) (GoldenBookEntry, error) {
	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		return GoldenBookEntry{}, result.Error
	}

	return entry, nil
}

func (d *GoldenBookDAO) FindAll(ctx context.Context) ([]GoldenBookEntry, error) {
	var entries []GoldenBookEntry

	result := d.db.WithContext(ctx).Order("event_date DESC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func (d *GoldenBookDAO) FindByID(ctx context.Context, id uint) (GoldenBookEntry, error) {
	var entry GoldenBookEntry

	result := d.db.WithContext(ctx).First(&entry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GoldenBookEntry{}, ErrGoldenBookEntryNotFound
		}

		return GoldenBookEntry{}, result.Error
	}

	return entry, nil
}

func (d *GoldenBookDAO) Update(ctx context.Context, entry GoldenBookEntry) (GoldenBookEntry, error) {
	result := d.db.WithContext(ctx).Model(&GoldenBookEntry{ID: entry.ID}).
		Select("Title", "Body", "EventDate", "AuthorName").
		Updates(&entry)
	if result.Error != nil {
		return GoldenBookEntry{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GoldenBookEntry{}, ErrGoldenBookEntryNotFound
	}

	return d.FindByID(ctx, entry.ID)
}

func (d *GoldenBookDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&GoldenBookEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGoldenBookEntryNotFound
	}

	return nil
}
