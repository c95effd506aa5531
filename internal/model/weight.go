package model

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar date format used by weight entries on the wire.
const DateLayout = "2006-01-02"

type WeightEntry struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Weight    float64   `json:"weight" db:"weight"`
	Date      time.Time `json:"date" db:"date"`
	Notes     *string   `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (e WeightEntry) Timestamp() time.Time {
	return e.Date
}

// Validate checks the entry against now. Backdated entries are fine,
// entries dated after the current calendar day are not.
func (e WeightEntry) Validate(now time.Time) error {
	if math.IsNaN(e.Weight) || e.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalid)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalid)
	}
	y, m, d := now.Date()
	endOfToday := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	if !e.Date.Before(endOfToday) {
		return fmt.Errorf("%w: date cannot be in the future", ErrInvalid)
	}
	return nil
}

// ParseDate accepts either a plain calendar date or a RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date [%s] is not a valid date", ErrInvalid, value)
	}
	return t, nil
}
