package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/wallfit/internal/auth"
	"github.com/2beens/wallfit/internal/model"
	"github.com/2beens/wallfit/internal/stats"
	"github.com/2beens/wallfit/internal/telemetry/metrics"
	"github.com/2beens/wallfit/internal/telemetry/tracing"
	"github.com/2beens/wallfit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, userID string) ([]model.Workout, error)
	Add(ctx context.Context, workout *model.Workout) (*model.Workout, error)
	Update(ctx context.Context, userID string, workout *model.Workout) (*model.Workout, error)
	Delete(ctx context.Context, userID, id string) error
}

type workoutRequest struct {
	Type     string `json:"type"`
	Duration int    `json:"duration"`
	Calories int    `json:"calories"`
}

type EstimateResponse struct {
	Duration int `json:"duration"`
	Calories int `json:"calories"`
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/workouts", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	router.HandleFunc("/api/workouts", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	router.HandleFunc("/api/workouts/estimate", h.HandleEstimate).Methods("GET", "OPTIONS").Name("estimate-calories")
	router.HandleFunc("/api/workouts/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	router.HandleFunc("/api/workouts/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	workouts, err := h.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list workouts [%s]: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get workouts")
		return
	}

	if workouts == nil {
		workouts = []model.Workout{}
	}
	pkg.WriteJSON(w, http.StatusOK, workouts)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	var req workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("new workout, unmarshal json: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	workout := &model.Workout{
		UserID:   auth.UserIDFromContext(ctx),
		Type:     req.Type,
		Duration: req.Duration,
		Calories: req.Calories,
	}
	if err := workout.Validate(); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	added, err := h.repo.Add(ctx, workout)
	if err != nil {
		h.writeRepoError(w, "add workout", err)
		return
	}

	h.metricsManager.CounterWorkoutsAdded.Inc()
	log.Debugf("new workout added: [%s] %s", added.ID, added.Type)
	pkg.WriteJSON(w, http.StatusCreated, added)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	var req workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("update workout, unmarshal json: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := auth.UserIDFromContext(ctx)
	workout := &model.Workout{
		ID:       mux.Vars(r)["id"],
		UserID:   userID,
		Type:     req.Type,
		Duration: req.Duration,
		Calories: req.Calories,
	}
	if err := workout.Validate(); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.repo.Update(ctx, userID, workout)
	if err != nil {
		h.writeRepoError(w, "update workout", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := h.repo.Delete(ctx, auth.UserIDFromContext(ctx), id); err != nil {
		h.writeRepoError(w, "delete workout", err)
		return
	}

	log.Debugf("workout deleted: %s", id)
	pkg.WriteNoContent(w)
}

func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	duration, err := strconv.Atoi(r.URL.Query().Get("duration"))
	if err != nil || duration < model.MinWorkoutDuration || duration > model.MaxWorkoutDuration {
		pkg.WriteJSONError(w, http.StatusBadRequest, "duration must be a number of minutes between 1 and 1440")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, EstimateResponse{
		Duration: duration,
		Calories: stats.EstimateCalories(duration),
	})
}

func (h *Handler) writeRepoError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "workout not found")
	case errors.Is(err, model.ErrForbidden):
		pkg.WriteJSONError(w, http.StatusForbidden, "not allowed to modify this workout")
	case errors.Is(err, model.ErrInvalid):
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to "+op)
	}
}
