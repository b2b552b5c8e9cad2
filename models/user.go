package models

import (
	"strings"
	"time"
)

// User keeps the original store shape: a string uuid primary key and a
// comma-joined preferred-exercise multi-select.
type User struct {
	UserID            string `gorm:"column:user_id;primaryKey"`
	Username          string `gorm:"uniqueIndex;not null"`
	Password          string `gorm:"not null"` // stored plaintext, see README security note
	Age               int
	Gender            string `gorm:"size:8"`
	FitnessGoal       string
	PreferredExercise string
	CreatedAt         time.Time
}

// PreferredExercises splits the stored multi-select into its items.
func (u *User) PreferredExercises() []string {
	if u.PreferredExercise == "" {
		return nil
	}
	return strings.Split(u.PreferredExercise, ",")
}
