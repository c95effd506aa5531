package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinWorkoutDuration = 1
	MaxWorkoutDuration = 1440 // one day, in minutes
	MinWorkoutCalories = 1
	MaxWorkoutCalories = 10000
)

type Workout struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Type      string     `json:"type" db:"type"`
	Duration  int        `json:"duration" db:"duration"`
	Calories  int        `json:"calories" db:"calories"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (w Workout) Timestamp() time.Time {
	return w.CreatedAt
}

func (w Workout) Validate() error {
	if strings.TrimSpace(w.Type) == "" {
		return fmt.Errorf("%w: workout type is required", ErrInvalid)
	}
	if w.Duration < MinWorkoutDuration || w.Duration > MaxWorkoutDuration {
		return fmt.Errorf("%w: duration must be between %d and %d minutes", ErrInvalid, MinWorkoutDuration, MaxWorkoutDuration)
	}
	if w.Calories < MinWorkoutCalories || w.Calories > MaxWorkoutCalories {
		return fmt.Errorf("%w: calories must be between %d and %d", ErrInvalid, MinWorkoutCalories, MaxWorkoutCalories)
	}
	return nil
}
