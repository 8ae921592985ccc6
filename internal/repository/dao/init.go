package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Unit{},
		&Member{},
		&Program{},
		&Activity{},
		&ScoreEntry{},
		&AttendanceRecord{},
		&GoldenBookEntry{},
	)
}
