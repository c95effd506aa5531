package stats

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/2beens/wallfit/internal/model"
)

const ChartLabelLayout = "2 Jan"

type ChartPoint struct {
	Label   string    `json:"label"`
	Value   float64   `json:"value"`
	RawDate time.Time `json:"rawDate"`
}

// ChartSeries yields weight entries as chart points in ascending date order.
// The input is copied, so the sequence can be ranged over any number of
// times and is not affected by later changes to entries.
func ChartSeries(entries []model.WeightEntry) iter.Seq[ChartPoint] {
	sorted := sortedByTime(entries, false)
	return func(yield func(ChartPoint) bool) {
		for _, e := range sorted {
			point := ChartPoint{
				Label:   e.Date.Format(ChartLabelLayout),
				Value:   e.Weight,
				RawDate: e.Date,
			}
			if !yield(point) {
				return
			}
		}
	}
}

type WeekCalories struct {
	Week     string `json:"week"`
	Calories int    `json:"calories"`
}

// WeeklyCalories sums calories per ISO week (e.g. "2024-W07") in loc,
// oldest week first.
func WeeklyCalories(workouts []model.Workout, loc *time.Location) []WeekCalories {
	totals := make(map[string]int)
	for _, w := range workouts {
		year, week := w.CreatedAt.In(loc).ISOWeek()
		totals[fmt.Sprintf("%04d-W%02d", year, week)] += w.Calories
	}

	weeks := make([]WeekCalories, 0, len(totals))
	for week, calories := range totals {
		weeks = append(weeks, WeekCalories{Week: week, Calories: calories})
	}
	slices.SortFunc(weeks, func(a, b WeekCalories) int {
		switch {
		case a.Week < b.Week:
			return -1
		case a.Week > b.Week:
			return 1
		default:
			return 0
		}
	})
	return weeks
}
