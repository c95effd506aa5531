package programs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/wallfit/internal/model"
	"github.com/2beens/wallfit/internal/stats"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyAllLevels    Difficulty = "all_levels"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var difficultyRank = map[Difficulty]int{
	DifficultyBeginner:     1,
	DifficultyAllLevels:    2,
	DifficultyIntermediate: 3,
	DifficultyAdvanced:     4,
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyRank[d]
	return ok
}

type Exercise struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

type Program struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationWeeks   int        `json:"durationWeeks"`
	SessionsPerWeek int        `json:"sessionsPerWeek"`
	Difficulty      Difficulty `json:"difficulty"`
	Calories        string     `json:"calories"`
	Exercises       []Exercise `json:"exercises"`
}

// Workouts turns every exercise into a workout with estimated calories.
func (p Program) Workouts() []model.Workout {
	workouts := make([]model.Workout, 0, len(p.Exercises))
	for _, e := range p.Exercises {
		workouts = append(workouts, model.Workout{
			Type:     e.Name,
			Duration: e.Duration,
			Calories: stats.EstimateCalories(e.Duration),
		})
	}
	return workouts
}

// parseExercises reads "Name:minutes" pairs separated by '|'.
func parseExercises(value string) ([]Exercise, error) {
	var exercises []Exercise
	for _, part := range strings.Split(value, "|") {
		name, minutes, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("exercise [%s] has no duration", part)
		}
		duration, err := strconv.Atoi(strings.TrimSpace(minutes))
		if err != nil {
			return nil, fmt.Errorf("exercise [%s] duration: %w", part, err)
		}
		if duration < model.MinWorkoutDuration || duration > model.MaxWorkoutDuration {
			return nil, fmt.Errorf("exercise [%s] duration out of range", part)
		}
		exercises = append(exercises, Exercise{
			Name:     strings.TrimSpace(name),
			Duration: duration,
		})
	}
	return exercises, nil
}
