package models

import "time"

// ExerciseRecord is insert-only: rows are never updated or deleted through the app.
type ExerciseRecord struct {
	RecordID       uint   `gorm:"column:record_id;primaryKey;autoIncrement"`
	UserID         string `gorm:"index;not null"`
	ExerciseType   string
	Duration       int    // minutes
	Intensity      string `gorm:"size:8"` // 低 | 中 | 高
	CaloriesBurned float64
	Notes          string    `gorm:"type:text"`
	Date           time.Time `gorm:"index"` // day granularity
}
