package services

import (
	"errors"
	"strings"

	"github.com/junler/fitnessTracker/config"
	"github.com/junler/fitnessTracker/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyCredentials   = errors.New("用户名和密码不能为空")
	ErrUsernameTaken      = errors.New("用户名已存在")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
)

type RegistrationInput struct {
	Username          string
	Password          string
	Age               int
	Gender            string
	FitnessGoal       string
	PreferredExercise []string
}

// RegisterUser creates the user row and its default settings row as one
// logical unit: on any failure neither row is committed.
func RegisterUser(input RegistrationInput) (*models.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrEmptyCredentials
	}

	if _, err := FindUserByName(input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user := models.User{
		UserID:            uuid.NewString(),
		Username:          input.Username,
		Password:          input.Password, // stored plaintext, see README security note
		Age:               input.Age,
		Gender:            input.Gender,
		FitnessGoal:       input.FitnessGoal,
		PreferredExercise: strings.Join(input.PreferredExercise, ","),
	}
	settings := models.UserSettings{
		UserID:             user.UserID,
		DailyExerciseGoal:  30,
		WeeklyExerciseGoal: 3,
		ReminderTime:       "08:00",
	}

	if err := createUserWithSettings(&user, &settings); err != nil {
		return nil, err
	}
	return &user, nil
}

// createUserWithSettings commits both rows or neither. The pre-check above
// races with concurrent registrations, so a unique-index violation here is
// still reported as a taken username, not as a storage failure.
func createUserWithSettings(user *models.User, settings *models.UserSettings) error {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(settings).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}
	return err
}

// AuthenticateUser looks the user up by name and compares the password
// exactly, as the source system does.
func AuthenticateUser(username, password string) (*models.User, error) {
	user, err := FindUserByName(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
