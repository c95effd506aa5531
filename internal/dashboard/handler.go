package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/wallfit/internal/auth"
	"github.com/2beens/wallfit/internal/goals"
	"github.com/2beens/wallfit/internal/model"
	"github.com/2beens/wallfit/internal/stats"
	"github.com/2beens/wallfit/internal/telemetry/tracing"
	"github.com/2beens/wallfit/internal/weight"
	"github.com/2beens/wallfit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type workoutsLister interface {
	List(ctx context.Context, userID string) ([]model.Workout, error)
}

type goalsLister interface {
	List(ctx context.Context, userID string) ([]model.Goal, error)
}

type weightLister interface {
	List(ctx context.Context, userID string) ([]model.WeightEntry, error)
}

type GoalsOverview struct {
	Active      int              `json:"active"`
	Completed   int              `json:"completed"`
	ActiveGoals []goals.GoalView `json:"activeGoals"`
}

type WeightOverview struct {
	Latest *model.WeightEntry `json:"latest"`
	Change *stats.WeightDelta `json:"change"`
}

// Overview is everything the dashboard page renders.
type Overview struct {
	stats.Advanced
	Activity               [stats.ActivityDays]int `json:"activity"`
	ActiveDays             int                     `json:"activeDays"`
	WeeklyCaloriesGoal     int                     `json:"weeklyCaloriesGoal"`
	WeeklyCaloriesProgress float64                 `json:"weeklyCaloriesProgress"`
	WeeklyCalories         []stats.WeekCalories    `json:"weeklyCalories"`
	Goals                  GoalsOverview           `json:"goals"`
	Weight                 WeightOverview          `json:"weight"`
}

type Handler struct {
	workouts           workoutsLister
	goals              goalsLister
	weight             weightLister
	weeklyCaloriesGoal int
}

func NewHandler(
	workouts workoutsLister,
	goals goalsLister,
	weight weightLister,
	weeklyCaloriesGoal int,
) *Handler {
	if weeklyCaloriesGoal <= 0 {
		weeklyCaloriesGoal = stats.DefaultWeeklyCalGoal
	}
	return &Handler{
		workouts:           workouts,
		goals:              goals,
		weight:             weight,
		weeklyCaloriesGoal: weeklyCaloriesGoal,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/stats", h.HandleOverview).Methods("GET", "OPTIONS").Name("dashboard-overview")
}

func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.overview")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	overview, err := h.overview(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("dashboard overview [%s]: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get dashboard stats")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, overview)
}

// overview fetches the three collections concurrently. Any failed fetch
// aborts the whole overview before the engine runs.
func (h *Handler) overview(ctx context.Context, userID string, now time.Time) (*Overview, error) {
	var (
		workouts  []model.Workout
		userGoals []model.Goal
		entries   []model.WeightEntry
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if workouts, err = h.workouts.List(gCtx, userID); err != nil {
			return fmt.Errorf("list workouts: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if userGoals, err = h.goals.List(gCtx, userID); err != nil {
			return fmt.Errorf("list goals: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if entries, err = h.weight.List(gCtx, userID); err != nil {
			return fmt.Errorf("list weight entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildOverview(workouts, userGoals, entries, now, h.weeklyCaloriesGoal), nil
}

func BuildOverview(
	workouts []model.Workout,
	userGoals []model.Goal,
	entries []model.WeightEntry,
	now time.Time,
	weeklyCaloriesGoal int,
) *Overview {
	active := stats.ActiveGoals(userGoals)
	activeViews := make([]goals.GoalView, 0, len(active))
	for _, goal := range active {
		activeViews = append(activeViews, goals.NewGoalView(goal, now))
	}

	weeklyCalories := stats.WeeklyCalories(workouts, now.Location())
	if weeklyCalories == nil {
		weeklyCalories = []stats.WeekCalories{}
	}

	trend := weight.NewTrend(entries)

	return &Overview{
		Advanced:               stats.AdvancedStats(workouts, now),
		Activity:               stats.BucketByDayOfWeek(workouts, now),
		ActiveDays:             stats.ActiveDays(workouts, now),
		WeeklyCaloriesGoal:     weeklyCaloriesGoal,
		WeeklyCaloriesProgress: stats.WeeklyCaloriesProgress(workouts, now, weeklyCaloriesGoal),
		WeeklyCalories:         weeklyCalories,
		Goals: GoalsOverview{
			Active:      len(active),
			Completed:   len(stats.CompletedGoals(userGoals)),
			ActiveGoals: activeViews,
		},
		Weight: WeightOverview{
			Latest: trend.Latest,
			Change: trend.Change,
		},
	}
}
