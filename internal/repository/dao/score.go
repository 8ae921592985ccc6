package dao

import (
	"context"

	"gorm.io/gorm"
)

type ScoreEntry struct {
	ID         uint   `gorm:"primaryKey"`
	ActivityID uint   `gorm:"not null;uniqueIndex:idx_scores_activity_unit"`
	UnitID     uint   `gorm:"not null;uniqueIndex:idx_scores_activity_unit"`
	Score      int    `gorm:"not null"`
	Note       string
}

type RankingRow struct {
	UnitID          uint   `gorm:"column:unit_id"`
	UnitName        string `gorm:"column:unit_name"`
	Color           string `gorm:"column:color"`
	Total           int    `gorm:"column:total"`
	ActivitiesCount int    `gorm:"column:activities_count"`
}

type ScoreDAO struct {
	db *gorm.DB
}

func NewScoreDAO(db *gorm.DB) *ScoreDAO {
	return &ScoreDAO{
		db: db,
	}
}

func (d *ScoreDAO) FindByActivityID(ctx context.Context, activityID uint) ([]ScoreEntry, error) {
	var entries []ScoreEntry

	result := d.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("unit_id ASC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// ReplaceForActivity swaps the activity's whole score set in one transaction:
// the previous set is deleted and the submitted one inserted. Returns the
// number of rows written.
func (d *ScoreDAO) ReplaceForActivity(ctx context.Context, activityID uint, entries []ScoreEntry) (int, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", activityID).Delete(&ScoreEntry{}).Error; err != nil {
			return err
		}

		for i := range entries {
			entries[i].ID = 0
			entries[i].ActivityID = activityID
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(entries), nil
}

// RankingForProgram aggregates totals per unit across all scored activities of
// the program. Ties on total break by participation count, then unit name.
func (d *ScoreDAO) RankingForProgram(ctx context.Context, programID uint) ([]RankingRow, error) {
	var rows []RankingRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT u.id AS unit_id,
		       u.name AS unit_name,
		       u.color AS color,
		       COALESCE(SUM(s.score), 0) AS total,
		       COUNT(s.id) AS activities_count
		FROM units u
		JOIN score_entries s ON s.unit_id = u.id
		JOIN activities a ON a.id = s.activity_id
		WHERE a.program_id = ?
		GROUP BY u.id, u.name, u.color
		ORDER BY total DESC, activities_count DESC, u.name ASC`,
		programID,
	).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
