package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/junler/fitnessTracker/models"

	"gorm.io/gorm"
)

// StatsService serves the aggregates the user-facing progress and analysis
// charts are drawn from.
type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

type RecordSummary struct {
	Date           string  `json:"date"`
	ExerciseType   string  `json:"exercise_type"`
	Duration       int     `json:"duration"`
	Intensity      string  `json:"intensity"`
	CaloriesBurned float64 `json:"calories_burned"`
}

type DurationPoint struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
}

type Progress struct {
	HasData          bool            `json:"has_data"`
	RecentRecords    []RecordSummary `json:"recent_records"`
	DurationTrend    []DurationPoint `json:"duration_trend"`
	TypeDistribution map[string]int  `json:"type_distribution"`
}

// Progress returns the latest records, the duration-over-time series and the
// exercise-type distribution for one user.
func (s *StatsService) Progress(userID string) (*Progress, error) {
	var records []models.ExerciseRecord
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, record_id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	out := &Progress{
		RecentRecords:    []RecordSummary{},
		DurationTrend:    []DurationPoint{},
		TypeDistribution: map[string]int{},
	}
	if len(records) == 0 {
		return out, nil
	}
	out.HasData = true

	for i, r := range records {
		if i < 5 {
			out.RecentRecords = append(out.RecentRecords, RecordSummary{
				Date:           r.Date.Format("2006-01-02"),
				ExerciseType:   r.ExerciseType,
				Duration:       r.Duration,
				Intensity:      r.Intensity,
				CaloriesBurned: r.CaloriesBurned,
			})
		}
		out.TypeDistribution[r.ExerciseType]++
	}

	// oldest first for the trend line
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		out.DurationTrend = append(out.DurationTrend, DurationPoint{
			Date:     r.Date.Format("2006-01-02"),
			Duration: r.Duration,
		})
	}

	return out, nil
}

type WeeklyStat struct {
	Week     string  `json:"week"` // ISO year-week, e.g. 2026-W35
	Duration int     `json:"duration"`
	Calories float64 `json:"calories"`
}

type Analysis struct {
	HasData       bool         `json:"has_data"`
	TotalWorkouts int          `json:"total_workouts"`
	TotalDuration int          `json:"total_duration"`
	TotalCalories float64      `json:"total_calories"`
	AvgDuration   float64      `json:"avg_duration"`
	WeeklyStats   []WeeklyStat `json:"weekly_stats"`
}

// Analysis computes the headline totals and the per-ISO-week rollup.
func (s *StatsService) Analysis(userID string) (*Analysis, error) {
	var records []models.ExerciseRecord
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	out := &Analysis{WeeklyStats: []WeeklyStat{}}
	if len(records) == 0 {
		return out, nil
	}
	out.HasData = true
	out.TotalWorkouts = len(records)

	weekly := map[string]*WeeklyStat{}
	for _, r := range records {
		out.TotalDuration += r.Duration
		out.TotalCalories += r.CaloriesBurned

		year, week := r.Date.ISOWeek()
		key := isoWeekKey(year, week)
		ws, ok := weekly[key]
		if !ok {
			ws = &WeeklyStat{Week: key}
			weekly[key] = ws
		}
		ws.Duration += r.Duration
		ws.Calories += r.CaloriesBurned
	}
	out.AvgDuration = round2(float64(out.TotalDuration) / float64(out.TotalWorkouts))

	for _, ws := range weekly {
		out.WeeklyStats = append(out.WeeklyStats, *ws)
	}
	sort.Slice(out.WeeklyStats, func(i, j int) bool {
		return out.WeeklyStats[i].Week < out.WeeklyStats[j].Week
	})

	return out, nil
}

func isoWeekKey(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
