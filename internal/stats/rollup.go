package stats

import (
	"time"

	"github.com/2beens/wallfit/internal/model"
)

const (
	WeekWindowDays = 7
	// MonthWindowDays is a rolling window, not a calendar month.
	MonthWindowDays = 30
)

type Rollup struct {
	Count  int       `json:"count"`
	Totals []float64 `json:"totals"`
}

// PeriodRollup sums the given fields over records dated no earlier than
// windowDays*24h before ref. Totals are in the same order as fields.
func PeriodRollup[T Dated](records []T, ref time.Time, windowDays int, fields ...func(T) float64) Rollup {
	from := ref.Add(-time.Duration(windowDays) * 24 * time.Hour)
	rollup := Rollup{Totals: make([]float64, len(fields))}
	for _, r := range records {
		if r.Timestamp().Before(from) {
			continue
		}
		rollup.Count++
		for i, field := range fields {
			rollup.Totals[i] += field(r)
		}
	}
	return rollup
}

type WorkoutPeriod struct {
	Workouts int `json:"workouts"`
	Calories int `json:"calories"`
	Duration int `json:"duration"`
}

func WorkoutRollup(workouts []model.Workout, ref time.Time, windowDays int) WorkoutPeriod {
	r := PeriodRollup(workouts, ref, windowDays,
		func(w model.Workout) float64 { return float64(w.Calories) },
		func(w model.Workout) float64 { return float64(w.Duration) },
	)
	return WorkoutPeriod{
		Workouts: r.Count,
		Calories: int(r.Totals[0]),
		Duration: int(r.Totals[1]),
	}
}
