// Package stats derives read-only metrics from records that were already
// fetched for a single user. Nothing here performs I/O or mutates its input,
// so every function is safe to call from concurrent request handlers.
package stats

import (
	"math"
	"slices"
	"time"

	"github.com/2beens/wallfit/internal/model"
)

// Dated is any record that can be placed on a timeline.
type Dated interface {
	Timestamp() time.Time
}

type WorkoutSummary struct {
	TotalWorkouts int `json:"totalWorkouts"`
	TotalCalories int `json:"totalCalories"`
	TotalDuration int `json:"totalDuration"`
	AvgCalories   int `json:"avgCalories"`
}

func WorkoutStats(workouts []model.Workout) WorkoutSummary {
	summary := WorkoutSummary{TotalWorkouts: len(workouts)}
	for _, w := range workouts {
		summary.TotalCalories += w.Calories
		summary.TotalDuration += w.Duration
	}
	summary.AvgCalories = roundedAvg(summary.TotalCalories, summary.TotalWorkouts)
	return summary
}

// AvgDuration is the rounded mean workout duration in minutes.
func AvgDuration(workouts []model.Workout) int {
	total := 0
	for _, w := range workouts {
		total += w.Duration
	}
	return roundedAvg(total, len(workouts))
}

// MostFrequentCategory returns the workout type seen most often. Ties go to
// the type that appears first in the input, empty input yields "".
func MostFrequentCategory(workouts []model.Workout) string {
	counts := make(map[string]int)
	var order []string
	for _, w := range workouts {
		if _, seen := counts[w.Type]; !seen {
			order = append(order, w.Type)
		}
		counts[w.Type]++
	}

	best, bestCount := "", 0
	for _, t := range order {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}

// roundedAvg rounds half up, 0 when count is 0.
func roundedAvg(total, count int) int {
	if count <= 0 {
		return 0
	}
	return int(math.Floor(float64(total)/float64(count) + 0.5))
}

func sortedByTime[T Dated](records []T, desc bool) []T {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if desc {
			return b.Timestamp().Compare(a.Timestamp())
		}
		return a.Timestamp().Compare(b.Timestamp())
	})
	return sorted
}
