package model

import (
	"fmt"
	"math"
	"time"
)

type GoalType string

const (
	GoalTypeCalories GoalType = "calories"
	GoalTypeWorkouts GoalType = "workouts"
	GoalTypeDuration GoalType = "duration"
	GoalTypeStreak   GoalType = "streak"
	GoalTypeWeight   GoalType = "weight"
)

func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeCalories, GoalTypeWorkouts, GoalTypeDuration, GoalTypeStreak, GoalTypeWeight:
		return true
	default:
		return false
	}
}

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusFailed    GoalStatus = "failed"
	GoalStatusPaused    GoalStatus = "paused"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusFailed, GoalStatusPaused:
		return true
	default:
		return false
	}
}

type Goal struct {
	ID           string     `json:"id" db:"id"`
	UserID       string     `json:"user_id" db:"user_id"`
	Type         GoalType   `json:"type" db:"type"`
	TargetValue  float64    `json:"target_value" db:"target_value"`
	CurrentValue float64    `json:"current_value" db:"current_value"`
	Deadline     *time.Time `json:"deadline" db:"deadline"`
	Status       GoalStatus `json:"status" db:"status"`
	Title        *string    `json:"title" db:"title"`
	Description  *string    `json:"description" db:"description"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (g Goal) Timestamp() time.Time {
	return g.CreatedAt
}

func (g Goal) Validate() error {
	if !g.Type.Valid() {
		return fmt.Errorf("%w: unknown goal type [%s]", ErrInvalid, g.Type)
	}
	if !g.Status.Valid() {
		return fmt.Errorf("%w: unknown goal status [%s]", ErrInvalid, g.Status)
	}
	if math.IsNaN(g.TargetValue) || g.TargetValue <= 0 {
		return fmt.Errorf("%w: target value must be positive", ErrInvalid)
	}
	if math.IsNaN(g.CurrentValue) || g.CurrentValue < 0 {
		return fmt.Errorf("%w: current value cannot be negative", ErrInvalid)
	}
	return nil
}
