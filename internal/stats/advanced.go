package stats

import (
	"time"

	"github.com/2beens/wallfit/internal/model"
)

// Advanced bundles everything shown next to a user's profile.
type Advanced struct {
	WorkoutSummary
	ThisWeek       WorkoutPeriod `json:"thisWeek"`
	ThisMonth      WorkoutPeriod `json:"thisMonth"`
	MostCommonType string        `json:"mostCommonType"`
	AvgDuration    int           `json:"avgDuration"`
	Streak         int           `json:"streak"`
}

func AdvancedStats(workouts []model.Workout, ref time.Time) Advanced {
	return Advanced{
		WorkoutSummary: WorkoutStats(workouts),
		ThisWeek:       WorkoutRollup(workouts, ref, WeekWindowDays),
		ThisMonth:      WorkoutRollup(workouts, ref, MonthWindowDays),
		MostCommonType: MostFrequentCategory(workouts),
		AvgDuration:    AvgDuration(workouts),
		Streak:         Streak(workouts, ref),
	}
}
