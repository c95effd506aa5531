package stats

import "time"

const ActivityDays = 7

// civilDay maps t to midnight UTC of its calendar date as seen in loc,
// so day arithmetic is not skewed by DST transitions.
func civilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBefore counts calendar days from t to ref in ref's location.
// Negative when t falls on a later day than ref.
func daysBefore(ref, t time.Time) int {
	loc := ref.Location()
	return int(civilDay(ref, loc).Sub(civilDay(t, loc)) / (24 * time.Hour))
}

// BucketByDayOfWeek counts records per calendar day for the 7 days ending
// at ref. Index 0 is ref minus 6 days, index 6 is ref itself.
func BucketByDayOfWeek[T Dated](records []T, ref time.Time) [ActivityDays]int {
	var buckets [ActivityDays]int
	for _, r := range records {
		diff := daysBefore(ref, r.Timestamp())
		if diff < 0 || diff >= ActivityDays {
			continue
		}
		buckets[ActivityDays-1-diff]++
	}
	return buckets
}

// ActiveDays is the number of days among the last 7 with at least one record.
func ActiveDays[T Dated](records []T, ref time.Time) int {
	active := 0
	for _, c := range BucketByDayOfWeek(records, ref) {
		if c > 0 {
			active++
		}
	}
	return active
}
