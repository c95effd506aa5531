package stats

import (
	"github.com/2beens/wallfit/internal/model"
)

type WeightDelta struct {
	Change      float64 `json:"change"`
	Percentage  float64 `json:"percentage"`
	FirstWeight float64 `json:"firstWeight"`
	LastWeight  float64 `json:"lastWeight"`
}

// WeightChange compares the chronologically first and last entries by their
// date. It returns nil when there are fewer than two entries.
func WeightChange(entries []model.WeightEntry) *WeightDelta {
	if len(entries) < 2 {
		return nil
	}

	sorted := sortedByTime(entries, false)
	first, last := sorted[0].Weight, sorted[len(sorted)-1].Weight
	delta := &WeightDelta{
		Change:      last - first,
		FirstWeight: first,
		LastWeight:  last,
	}
	if first != 0 {
		delta.Percentage = delta.Change / first * 100
	}
	return delta
}

// LatestWeight picks the entry with the latest date. Ties are broken by
// created_at, then by position in the input (later wins).
func LatestWeight(entries []model.WeightEntry) *model.WeightEntry {
	if len(entries) == 0 {
		return nil
	}
	latest := entries[0]
	for _, e := range entries[1:] {
		switch c := e.Date.Compare(latest.Date); {
		case c > 0:
			latest = e
		case c == 0 && !e.CreatedAt.Before(latest.CreatedAt):
			latest = e
		}
	}
	return &latest
}
