package services

import (
	"sort"
	"time"

	"github.com/junler/fitnessTracker/models"

	"gorm.io/gorm"
)

// AdminService serves the administrator views: the user roster and the
// 10-day analytics rollup.
type AdminService struct {
	db    *gorm.DB
	cache *Cache
	now   func() time.Time
}

func NewAdminService(db *gorm.DB, cache *Cache) *AdminService {
	return &AdminService{db: db, cache: cache, now: time.Now}
}

type UserOverview struct {
	UserID            string   `json:"user_id"`
	Username          string   `json:"username"`
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	FitnessGoal       string   `json:"fitness_goal"`
	PreferredExercise []string `json:"preferred_exercise"`
	CreatedAt         string   `json:"created_at"`
	RecordCount       int64    `json:"record_count"`
	LastExercise      string   `json:"last_exercise,omitempty"`
	TotalDuration     int      `json:"total_duration"`
}

// ListUsers builds the roster with a per-user drill-down summary. One
// secondary query per user, acceptable at the assumed scale.
func (s *AdminService) ListUsers() ([]UserOverview, error) {
	var users []models.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]UserOverview, 0, len(users))
	for _, u := range users {
		row := UserOverview{
			UserID:            u.UserID,
			Username:          u.Username,
			Age:               u.Age,
			Gender:            u.Gender,
			FitnessGoal:       u.FitnessGoal,
			PreferredExercise: u.PreferredExercises(),
			CreatedAt:         u.CreatedAt.Format("2006-01-02 15:04:05"),
		}

		var records []models.ExerciseRecord
		if err := s.db.Where("user_id = ?", u.UserID).Find(&records).Error; err != nil {
			return nil, err
		}
		row.RecordCount = int64(len(records))
		var last time.Time
		for _, r := range records {
			row.TotalDuration += r.Duration
			if r.Date.After(last) {
				last = r.Date
			}
		}
		if !last.IsZero() {
			row.LastExercise = last.Format("2006-01-02")
		}

		out = append(out, row)
	}
	return out, nil
}

type DailyTypeCount struct {
	Date         string `json:"date"`
	ExerciseType string `json:"exercise_type"`
	Count        int    `json:"count"`
}

const dailyBreakdownCacheKey = "admin:daily-breakdown"

// DailyBreakdown groups the last 10 days of records by (date, exercise type)
// for the stacked chart. Served through the short-TTL process cache; the
// admin clear-cache action empties it.
func (s *AdminService) DailyBreakdown() ([]DailyTypeCount, error) {
	if v, ok := s.cache.Get(dailyBreakdownCacheKey); ok {
		return v.([]DailyTypeCount), nil
	}

	rows, err := s.windowRecords()
	if err != nil {
		return nil, err
	}

	counts := map[string]map[string]int{}
	for _, r := range rows {
		key := r.Date.Format("2006-01-02")
		if counts[key] == nil {
			counts[key] = map[string]int{}
		}
		counts[key][r.ExerciseType]++
	}

	out := []DailyTypeCount{}
	for date, byType := range counts {
		for typ, n := range byType {
			out = append(out, DailyTypeCount{Date: date, ExerciseType: typ, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ExerciseType < out[j].ExerciseType
	})

	s.cache.Set(dailyBreakdownCacheKey, out)
	return out, nil
}

type TopUser struct {
	Username      string  `json:"username"`
	TotalDuration int     `json:"total_duration"`
	TotalCalories float64 `json:"total_calories"`
	Score         float64 `json:"score"`
}

// TopUsers ranks users over the 10-day window by
// 0.5·(duration/max duration) + 0.5·(calories/max calories) and keeps the
// top three. Ties are broken by username ascending so the ranking is
// deterministic.
func (s *AdminService) TopUsers() ([]TopUser, error) {
	rows, err := s.windowRecords()
	if err != nil {
		return nil, err
	}

	type agg struct {
		duration int
		calories float64
	}
	perUser := map[string]*agg{}
	for _, r := range rows {
		a, ok := perUser[r.Username]
		if !ok {
			a = &agg{}
			perUser[r.Username] = a
		}
		a.duration += r.Duration
		a.calories += r.CaloriesBurned
	}
	if len(perUser) == 0 {
		return []TopUser{}, nil
	}

	var maxDur int
	var maxCal float64
	for _, a := range perUser {
		if a.duration > maxDur {
			maxDur = a.duration
		}
		if a.calories > maxCal {
			maxCal = a.calories
		}
	}

	ranked := make([]TopUser, 0, len(perUser))
	for name, a := range perUser {
		var score float64
		if maxDur > 0 {
			score += 0.5 * float64(a.duration) / float64(maxDur)
		}
		if maxCal > 0 {
			score += 0.5 * a.calories / maxCal
		}
		ranked = append(ranked, TopUser{
			Username:      name,
			TotalDuration: a.duration,
			TotalCalories: a.calories,
			Score:         round2(score),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Username < ranked[j].Username
	})

	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked, nil
}

type joinedRecord struct {
	Username       string
	ExerciseType   string
	Duration       int
	CaloriesBurned float64
	Date           time.Time
}

func (s *AdminService) windowRecords() ([]joinedRecord, error) {
	start := dayStart(s.now().AddDate(0, 0, -10))

	var rows []joinedRecord
	err := s.db.
		Model(&models.ExerciseRecord{}).
		Select("users.username, exercise_records.exercise_type, exercise_records.duration, exercise_records.calories_burned, exercise_records.date").
		Joins("JOIN users ON users.user_id = exercise_records.user_id").
		Where("exercise_records.date >= ?", start).
		Scan(&rows).Error
	return rows, err
}
