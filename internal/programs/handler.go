package programs

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/wallfit/internal/auth"
	"github.com/2beens/wallfit/internal/model"
	"github.com/2beens/wallfit/internal/telemetry/metrics"
	"github.com/2beens/wallfit/internal/telemetry/tracing"
	"github.com/2beens/wallfit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=programs_test

type workoutsAdder interface {
	AddMany(ctx context.Context, userID string, workouts []model.Workout) ([]model.Workout, error)
}

type ListResponse struct {
	Programs []Program `json:"programs"`
	Summary  Summary   `json:"summary"`
}

type Handler struct {
	catalogue      *Catalogue
	workouts       workoutsAdder
	metricsManager *metrics.Manager
}

func NewHandler(catalogue *Catalogue, workouts workoutsAdder, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		catalogue:      catalogue,
		workouts:       workouts,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/programs", h.HandleList).Methods("GET", "OPTIONS").Name("list-programs")
	router.HandleFunc("/api/programs/{id:[0-9]+}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-program")
	router.HandleFunc("/api/programs/{id:[0-9]+}/start", h.HandleStart).Methods("POST", "OPTIONS").Name("start-program")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.list")
	defer span.End()

	query := r.URL.Query()
	filter := Filter{
		Query:      query.Get("q"),
		Difficulty: Difficulty(query.Get("difficulty")),
		Sort:       SortBy(query.Get("sort")),
	}
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid difficulty")
		return
	}
	if filter.Sort == "" {
		filter.Sort = SortByTitle
	}
	if !filter.Sort.Valid() {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid sort")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ListResponse{
		Programs: h.catalogue.Find(filter),
		Summary:  h.catalogue.Summary(),
	})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.get")
	defer span.End()

	program, ok := h.program(w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, http.StatusOK, program)
}

// HandleStart logs one workout per program exercise for the current user.
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.start")
	defer span.End()

	program, ok := h.program(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("program", program.ID))

	userID := auth.UserIDFromContext(ctx)
	added, err := h.workouts.AddMany(ctx, userID, program.Workouts())
	if err != nil {
		if errors.Is(err, model.ErrInvalid) {
			pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("start program %d [%s]: %s", program.ID, userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to start program")
		return
	}

	h.metricsManager.CounterWorkoutsAdded.Add(float64(len(added)))
	log.Debugf("program %d started by [%s]: %d workouts", program.ID, userID, len(added))
	pkg.WriteJSON(w, http.StatusCreated, added)
}

func (h *Handler) program(w http.ResponseWriter, r *http.Request) (Program, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid program id")
		return Program{}, false
	}
	program, err := h.catalogue.Get(id)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusNotFound, err.Error())
		return Program{}, false
	}
	return program, true
}
