package stats

import (
	"math"
	"time"

	"github.com/2beens/wallfit/internal/model"
)

// GoalProgress is current/target as a percentage clamped to [0, 100].
func GoalProgress(goal model.Goal) float64 {
	if goal.TargetValue <= 0 {
		return 0
	}
	p := goal.CurrentValue / goal.TargetValue * 100
	if math.IsNaN(p) {
		return 0
	}
	return min(max(p, 0), 100)
}

// IsOverdue reports a goal whose deadline passed before it was completed.
// The stored status is left untouched.
func IsOverdue(goal model.Goal, now time.Time) bool {
	return goal.Deadline != nil &&
		goal.Deadline.Before(now) &&
		goal.Status != model.GoalStatusCompleted
}

func GoalsWithStatus(goals []model.Goal, status model.GoalStatus) []model.Goal {
	filtered := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Status == status {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

func ActiveGoals(goals []model.Goal) []model.Goal {
	return GoalsWithStatus(goals, model.GoalStatusActive)
}

func CompletedGoals(goals []model.Goal) []model.Goal {
	return GoalsWithStatus(goals, model.GoalStatusCompleted)
}
