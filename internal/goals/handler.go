package goals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/wallfit/internal/auth"
	"github.com/2beens/wallfit/internal/model"
	"github.com/2beens/wallfit/internal/stats"
	"github.com/2beens/wallfit/internal/telemetry/metrics"
	"github.com/2beens/wallfit/internal/telemetry/tracing"
	"github.com/2beens/wallfit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsRepo interface {
	List(ctx context.Context, userID string) ([]model.Goal, error)
	Add(ctx context.Context, goal *model.Goal) (*model.Goal, error)
	Update(ctx context.Context, userID string, goal *model.Goal) (*model.Goal, error)
	Delete(ctx context.Context, userID, id string) error
}

// GoalView is a goal together with the numbers derived from it.
type GoalView struct {
	model.Goal
	Progress float64 `json:"progress"`
	Overdue  bool    `json:"overdue"`
}

func NewGoalView(goal model.Goal, now time.Time) GoalView {
	return GoalView{
		Goal:     goal,
		Progress: stats.GoalProgress(goal),
		Overdue:  stats.IsOverdue(goal, now),
	}
}

type newGoalRequest struct {
	Type        model.GoalType `json:"type"`
	TargetValue float64        `json:"target_value"`
	Deadline    *string        `json:"deadline"`
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
}

type updateGoalRequest struct {
	newGoalRequest
	CurrentValue float64          `json:"current_value"`
	Status       model.GoalStatus `json:"status"`
}

type Handler struct {
	repo           goalsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo goalsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/goals", h.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	router.HandleFunc("/api/goals", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-goal")
	router.HandleFunc("/api/goals/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-goal")
	router.HandleFunc("/api/goals/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-goal")
}

// HandleList returns the user's goals, newest first, optionally filtered
// by ?status=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	status := model.GoalStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		pkg.WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("unknown goal status [%s]", status))
		return
	}

	userID := auth.UserIDFromContext(ctx)
	goals, err := h.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list goals [%s]: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get goals")
		return
	}
	if status != "" {
		goals = stats.GoalsWithStatus(goals, status)
	}

	now := time.Now()
	views := make([]GoalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, NewGoalView(goal, now))
	}
	pkg.WriteJSON(w, http.StatusOK, views)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
	defer span.End()

	var req newGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("new goal, unmarshal json: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := req.toGoal(auth.UserIDFromContext(ctx))
	if err == nil {
		goal.Status = model.GoalStatusActive
		err = goal.Validate()
	}
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	added, err := h.repo.Add(ctx, goal)
	if err != nil {
		h.writeRepoError(w, "add goal", err)
		return
	}

	h.metricsManager.CounterGoalsAdded.Inc()
	log.Debugf("new goal added: [%s] %s", added.ID, added.Type)
	pkg.WriteJSON(w, http.StatusCreated, NewGoalView(*added, time.Now()))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("update goal, unmarshal json: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := auth.UserIDFromContext(ctx)
	goal, err := req.toGoal(userID)
	if err == nil {
		goal.ID = mux.Vars(r)["id"]
		goal.CurrentValue = req.CurrentValue
		goal.Status = req.Status
		err = goal.Validate()
	}
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.repo.Update(ctx, userID, goal)
	if err != nil {
		h.writeRepoError(w, "update goal", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, NewGoalView(*updated, time.Now()))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := h.repo.Delete(ctx, auth.UserIDFromContext(ctx), id); err != nil {
		h.writeRepoError(w, "delete goal", err)
		return
	}

	log.Debugf("goal deleted: %s", id)
	pkg.WriteNoContent(w)
}

func (req newGoalRequest) toGoal(userID string) (*model.Goal, error) {
	goal := &model.Goal{
		UserID:      userID,
		Type:        req.Type,
		TargetValue: req.TargetValue,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline, err := model.ParseDate(*req.Deadline)
		if err != nil {
			return nil, err
		}
		goal.Deadline = &deadline
	}
	return goal, nil
}

func (h *Handler) writeRepoError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrGoalNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "goal not found")
	case errors.Is(err, model.ErrForbidden):
		pkg.WriteJSONError(w, http.StatusForbidden, "not allowed to modify this goal")
	case errors.Is(err, model.ErrInvalid):
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to "+op)
	}
}
