package profile

import (
	"context"
	"encoding/json"
	"errors"
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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileRepo interface {
	GetOrCreate(ctx context.Context, userID string) (*model.Profile, error)
	Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	Delete(ctx context.Context, userID string) error
}

type workoutsLister interface {
	List(ctx context.Context, userID string) ([]model.Workout, error)
}

type Response struct {
	Profile *model.Profile `json:"profile"`
	Stats   stats.Advanced `json:"stats"`
}

type updateRequest struct {
	Username      *string  `json:"username"`
	AvatarURL     *string  `json:"avatar_url"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	Goal          *string  `json:"goal"`
	ActivityLevel *string  `json:"activity_level"`
}

type Handler struct {
	repo           profileRepo
	workouts       workoutsLister
	metricsManager *metrics.Manager
}

func NewHandler(repo profileRepo, workouts workoutsLister, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		workouts:       workouts,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/profile", h.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	router.HandleFunc("/api/profile", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
	router.HandleFunc("/api/profile", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-profile")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	profile, err := h.repo.GetOrCreate(ctx, userID)
	if err != nil {
		log.Errorf("get profile [%s]: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	workouts, err := h.workouts.List(ctx, userID)
	if err != nil {
		log.Errorf("get profile [%s], list workouts: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get profile stats")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, Response{
		Profile: profile,
		Stats:   stats.AdvancedStats(workouts, time.Now()),
	})
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("update profile, unmarshal json: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile := &model.Profile{
		ID:            auth.UserIDFromContext(ctx),
		Username:      req.Username,
		AvatarURL:     req.AvatarURL,
		Weight:        req.Weight,
		Height:        req.Height,
		Goal:          req.Goal,
		ActivityLevel: req.ActivityLevel,
	}
	if err := profile.Validate(); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.repo.Upsert(ctx, profile)
	switch {
	case err == nil:
	case errors.Is(err, ErrUsernameTaken):
		pkg.WriteJSONError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, model.ErrInvalid):
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	default:
		log.Errorf("update profile [%s]: %s", profile.ID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.delete")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	if err := h.repo.Delete(ctx, userID); err != nil {
		log.Errorf("delete profile [%s]: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}

	h.metricsManager.CounterProfilesDeleted.Inc()
	log.Infof("profile deleted: %s", userID)
	pkg.WriteNoContent(w)
}
