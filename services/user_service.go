package services

import (
	"errors"
	"strings"

	"github.com/junler/fitnessTracker/config"
	"github.com/junler/fitnessTracker/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// FindUserByName returns the user record or ErrUserNotFound; absence is an
// explicit result here, never a panic.
func FindUserByName(username string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func FindUserByID(userID string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserProfile returns the profile fields plus the read-only settings row.
func GetUserProfile(userID string) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	var settings models.UserSettings
	if err := config.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return map[string]interface{}{
		"user_id":            user.UserID,
		"username":           user.Username,
		"age":                user.Age,
		"gender":             user.Gender,
		"fitness_goal":       user.FitnessGoal,
		"preferred_exercise": user.PreferredExercises(),
		"created_at":         user.CreatedAt.Format("2006-01-02 15:04:05"),
		"settings": map[string]interface{}{
			"daily_exercise_goal":  settings.DailyExerciseGoal,
			"weekly_exercise_goal": settings.WeeklyExerciseGoal,
			"reminder_time":        settings.ReminderTime,
		},
	}, nil
}

type ProfileInput struct {
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	FitnessGoal       string   `json:"fitness_goal"`
	PreferredExercise []string `json:"preferred_exercise"`
}

// UpdateUserProfile mutates the demographic fields; username and password are
// not editable through this path.
func UpdateUserProfile(userID string, input ProfileInput) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	user.Age = input.Age
	user.Gender = input.Gender
	user.FitnessGoal = input.FitnessGoal
	user.PreferredExercise = strings.Join(input.PreferredExercise, ",")

	return config.DB.Save(user).Error
}
