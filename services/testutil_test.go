package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/junler/fitnessTracker/config"
	"github.com/junler/fitnessTracker/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory store and points the package global at
// it, mirroring how the app wires config.DB at startup.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := config.OpenDB(dsn)
	require.NoError(t, err)
	config.DB = db
	return db
}

func mustRegister(t *testing.T, username string, age int, gender, goal string, preferred ...string) *models.User {
	t.Helper()
	user, err := RegisterUser(RegistrationInput{
		Username:          username,
		Password:          "pw1",
		Age:               age,
		Gender:            gender,
		FitnessGoal:       goal,
		PreferredExercise: preferred,
	})
	require.NoError(t, err)
	return user
}

func insertRecord(t *testing.T, db *gorm.DB, userID, exerciseType string, duration int, intensity string, calories float64, daysAgo int) {
	t.Helper()
	rec := models.ExerciseRecord{
		UserID:         userID,
		ExerciseType:   exerciseType,
		Duration:       duration,
		Intensity:      intensity,
		CaloriesBurned: calories,
		Date:           dayStart(time.Now().AddDate(0, 0, -daysAgo)),
	}
	require.NoError(t, db.Create(&rec).Error)
}
