package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/junler/fitnessTracker/config"
	"github.com/junler/fitnessTracker/models"
)

var (
	ErrInvalidDuration  = errors.New("运动时长必须为正数")
	ErrInvalidCalories  = errors.New("消耗卡路里不能为负数")
	ErrInvalidIntensity = errors.New("无效的运动强度")
)

type RecordInput struct {
	ExerciseType string  `json:"exercise_type"`
	Duration     int     `json:"duration"`
	Intensity    string  `json:"intensity"`
	Calories     float64 `json:"calories_burned"`
	Notes        string  `json:"notes"`
	Date         string  `json:"date"` // YYYY-MM-DD, defaults to today
}

// AddExerciseRecord validates and inserts one manual record.
func AddExerciseRecord(userID string, input RecordInput) (*models.ExerciseRecord, error) {
	if input.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if input.Calories < 0 {
		return nil, ErrInvalidCalories
	}
	if _, ok := config.IntensityCalories[input.Intensity]; !ok {
		return nil, ErrInvalidIntensity
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			return nil, errors.New("无效的日期格式")
		}
		date = parsed
	}

	record := models.ExerciseRecord{
		UserID:         userID,
		ExerciseType:   input.ExerciseType,
		Duration:       input.Duration,
		Intensity:      input.Intensity,
		CaloriesBurned: input.Calories,
		Notes:          input.Notes,
		Date:           dayStart(date),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// GenerateRandomRecord inserts a synthetic record: random type and intensity,
// duration 15-120 minutes, calories 50-500, dated within the last 30 days.
func GenerateRandomRecord(userID string) (*models.ExerciseRecord, error) {
	record := models.ExerciseRecord{
		UserID:         userID,
		ExerciseType:   config.ExerciseTypes[rand.Intn(len(config.ExerciseTypes))],
		Duration:       15 + rand.Intn(106),
		Intensity:      config.IntensityLevels[rand.Intn(len(config.IntensityLevels))],
		CaloriesBurned: float64(50 + rand.Intn(451)),
		Notes:          "自动生成的记录",
		Date:           dayStart(time.Now().AddDate(0, 0, -rand.Intn(31))),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListExerciseRecords returns the caller's records, newest first.
func ListExerciseRecords(userID string) ([]models.ExerciseRecord, error) {
	var records []models.ExerciseRecord
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC, record_id DESC").
		Find(&records).Error
	return records, err
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
