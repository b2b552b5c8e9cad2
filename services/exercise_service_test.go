package services

import (
	"testing"
	"time"

	"github.com/junler/fitnessTracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExerciseRecordValidation(t *testing.T) {
	newTestDB(t)
	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")

	_, err := AddExerciseRecord(u.UserID, RecordInput{ExerciseType: "跑步", Duration: 0, Intensity: "中"})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = AddExerciseRecord(u.UserID, RecordInput{ExerciseType: "跑步", Duration: 30, Intensity: "中", Calories: -1})
	assert.ErrorIs(t, err, ErrInvalidCalories)

	_, err = AddExerciseRecord(u.UserID, RecordInput{ExerciseType: "跑步", Duration: 30, Intensity: "极高"})
	assert.ErrorIs(t, err, ErrInvalidIntensity)
}

func TestAddExerciseRecord(t *testing.T) {
	newTestDB(t)
	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")

	rec, err := AddExerciseRecord(u.UserID, RecordInput{
		ExerciseType: "游泳",
		Duration:     45,
		Intensity:    "高",
		Calories:     320,
		Notes:        "晨练",
		Date:         "2026-08-20",
	})
	require.NoError(t, err)
	assert.NotZero(t, rec.RecordID)
	assert.Equal(t, "2026-08-20", rec.Date.Format("2006-01-02"))

	records, err := ListExerciseRecords(u.UserID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "游泳", records[0].ExerciseType)
}

func TestGenerateRandomRecordRanges(t *testing.T) {
	newTestDB(t)
	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")

	for i := 0; i < 20; i++ {
		rec, err := GenerateRandomRecord(u.UserID)
		require.NoError(t, err)

		assert.Contains(t, config.ExerciseTypes, rec.ExerciseType)
		assert.Contains(t, config.IntensityLevels, rec.Intensity)
		assert.GreaterOrEqual(t, rec.Duration, 15)
		assert.LessOrEqual(t, rec.Duration, 120)
		assert.GreaterOrEqual(t, rec.CaloriesBurned, 50.0)
		assert.LessOrEqual(t, rec.CaloriesBurned, 500.0)
		assert.Equal(t, "自动生成的记录", rec.Notes)

		oldest := dayStart(time.Now().AddDate(0, 0, -30))
		assert.False(t, rec.Date.Before(oldest))
		assert.False(t, rec.Date.After(time.Now()))
	}
}

func TestListRecordsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")

	insertRecord(t, db, u.UserID, "跑步", 30, "中", 200, 3)
	insertRecord(t, db, u.UserID, "游泳", 45, "高", 300, 0)
	insertRecord(t, db, u.UserID, "瑜伽", 20, "低", 100, 1)

	records, err := ListExerciseRecords(u.UserID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "游泳", records[0].ExerciseType)
	assert.Equal(t, "瑜伽", records[1].ExerciseType)
	assert.Equal(t, "跑步", records[2].ExerciseType)
}
