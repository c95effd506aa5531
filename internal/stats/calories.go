package stats

import (
	"math"
	"time"

	"github.com/2beens/wallfit/internal/model"
)

const (
	CaloriesPerMinute    = 7
	DefaultWeeklyCalGoal = 3000
)

// EstimateCalories is a rough burn estimate for a workout of the given length.
func EstimateCalories(durationMinutes int) int {
	if durationMinutes <= 0 {
		return 0
	}
	return int(math.Round(float64(durationMinutes) * CaloriesPerMinute))
}

// WeeklyCaloriesProgress is the share of weeklyGoal burned in the 7 days
// before ref, clamped to [0, 100].
func WeeklyCaloriesProgress(workouts []model.Workout, ref time.Time, weeklyGoal int) float64 {
	if weeklyGoal <= 0 {
		return 0
	}
	week := WorkoutRollup(workouts, ref, WeekWindowDays)
	return min(float64(week.Calories)/float64(weeklyGoal)*100, 100)
}
