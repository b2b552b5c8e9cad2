package models

// UserSettings is 1:1 with users, created with defaults at registration.
// No edit path is exposed; the row is read back with the profile.
type UserSettings struct {
	UserID             string `gorm:"column:user_id;primaryKey"`
	DailyExerciseGoal  int    // minutes per day
	WeeklyExerciseGoal int    // sessions per week
	ReminderTime       string `gorm:"size:5"` // "HH:MM"
}
