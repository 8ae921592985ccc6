package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUnitNotFound   = errors.New("unit not found")
	ErrMemberNotFound = errors.New("member not found")
)

type Unit struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"not null"`
	Color  string `gorm:"not null"`
	Totem  string
	Branch string `gorm:"not null;index"`
}

type Member struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"not null"`
	Branch string `gorm:"not null;index"`
	UnitID *uint  `gorm:"index"`
}

type UnitDAO struct {
	db *gorm.DB
}

func NewUnitDAO(db *gorm.DB) *UnitDAO {
	return &UnitDAO{
		db: db,
	}
}

func (d *UnitDAO) FindByBranch(ctx context.Context, branch string) ([]Unit, error) {
	var units []Unit

	result := d.db.WithContext(ctx).
		Where("branch = ?", branch).
		Order("name ASC").
		Find(&units)
	if result.Error != nil {
		return nil, result.Error
	}

	return units, nil
}

func (d *UnitDAO) FindByID(ctx context.Context, id uint) (Unit, error) {
	var unit Unit

	result := d.db.WithContext(ctx).First(&unit, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Unit{}, ErrUnitNotFound
		}

		return Unit{}, result.Error
	}

	return unit, nil
}

func (d *UnitDAO) FindMembersByBranch(ctx context.Context, branch string) ([]Member, error) {
	var members []Member

	result := d.db.WithContext(ctx).
		Where("branch = ?", branch).
		Order("name ASC").
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}
