package stats

import "time"

// Streak counts consecutive calendar days ending at ref that have at least
// one record. ref itself is day 0, so a streak needs a record on ref's day.
// Several records on the same day count once, and the walk stops at the
// first missing day.
func Streak[T Dated](records []T, ref time.Time) int {
	streak := 0
	for _, r := range sortedByTime(records, true) {
		diff := daysBefore(ref, r.Timestamp())
		switch {
		case diff == streak:
			streak++
		case diff < streak:
			// same day as the previous match, or dated after ref
			continue
		default:
			return streak
		}
	}
	return streak
}
