package services

import (
	"math/rand"
	"time"

	"github.com/junler/fitnessTracker/config"
	"github.com/junler/fitnessTracker/models"
)

// RecService computes the "today" recommendation. Every call recomputes from
// scratch; refreshing is the same as calling again, random draws included.
type RecService struct {
	now func() time.Time
	rng *rand.Rand
}

func NewRecService() *RecService {
	return &RecService{
		now: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type Recommendation struct {
	AvgDailyScore      float64 `json:"avg_daily_score"`
	SuggestedExercise  string  `json:"suggested_exercise"`
	SuggestedIntensity string  `json:"suggested_intensity"`
	SuggestedDuration  string  `json:"suggested_duration"` // minutes, band
	MealSlot           string  `json:"meal_slot"`
	RecommendedFood    string  `json:"recommended_food"`
	NutritionTip       string  `json:"nutrition_tip"`
}

// GetRecommendation scores the last 7 days of records by the static
// per-intensity weight, maps the average daily score to an exercise band and
// independently picks a meal from the (goal, time-of-day) food table.
func (r *RecService) GetRecommendation(userID string) (*Recommendation, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	now := r.now()
	sevenDaysAgo := dayStart(now.AddDate(0, 0, -7))

	var records []models.ExerciseRecord
	if err := config.DB.
		Where("user_id = ? AND date >= ?", userID, sevenDaysAgo).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	var total float64
	for _, rec := range records {
		total += config.IntensityCalories[rec.Intensity]
	}
	avgDaily := 0.0
	if len(records) > 0 {
		avgDaily = total / 7
	}

	out := &Recommendation{AvgDailyScore: round2(avgDaily)}

	switch {
	case avgDaily < config.RecScoreLow:
		out.SuggestedIntensity = "中"
		out.SuggestedDuration = "30-45"
	case avgDaily < config.RecScoreHigh:
		out.SuggestedIntensity = "中到高"
		out.SuggestedDuration = "45-60"
	default:
		out.SuggestedIntensity = "低到中"
		out.SuggestedDuration = "30"
	}

	preferred := user.PreferredExercises()
	if len(preferred) == 0 {
		preferred = config.ExerciseTypes
	}
	out.SuggestedExercise = preferred[r.rng.Intn(len(preferred))]

	out.MealSlot = mealSlotFor(now.Hour())

	goal := user.FitnessGoal
	if _, ok := config.FoodCategories[goal]; !ok {
		goal = config.DefaultFoodGoal
	}
	foods := config.FoodCategories[goal][out.MealSlot]
	out.RecommendedFood = foods[r.rng.Intn(len(foods))]
	out.NutritionTip = nutritionTipFor(user.FitnessGoal)

	return out, nil
}

func mealSlotFor(hour int) string {
	switch {
	case hour >= 5 && hour < 10:
		return config.MealBreakfast
	case hour >= 10 && hour < 15:
		return config.MealLunch
	default:
		return config.MealDinner
	}
}

func nutritionTipFor(goal string) string {
	switch goal {
	case "增肌":
		return "🥩 注意补充优质蛋白，每天蛋白质摄入建议达到体重(kg)×2克"
	case "减重":
		return "🥗 控制碳水化合物摄入，增加蔬菜摄入，保证适量蛋白质"
	default:
		return "🥜 均衡饮食，适量多样，注意营养搭配"
	}
}
