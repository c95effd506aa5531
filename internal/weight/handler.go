package weight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weight_test

type weightService interface {
	List(ctx context.Context, userID string) ([]model.WeightEntry, error)
	Add(ctx context.Context, entry *model.WeightEntry) (*model.WeightEntry, error)
	Update(ctx context.Context, userID string, entry *model.WeightEntry) (*model.WeightEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type entryRequest struct {
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
	Notes  *string `json:"notes"`
}

type TrendResponse struct {
	Latest *model.WeightEntry `json:"latest"`
	Change *stats.WeightDelta `json:"change"`
	Series []stats.ChartPoint  `json:"series"`
}

type Handler struct {
	service        weightService
	metricsManager *metrics.Manager
}

func NewHandler(service weightService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/weight", h.HandleList).Methods("GET", "OPTIONS").Name("list-weight")
	router.HandleFunc("/api/weight", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-weight")
	router.HandleFunc("/api/weight/trend", h.HandleTrend).Methods("GET", "OPTIONS").Name("weight-trend")
	router.HandleFunc("/api/weight/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-weight")
	router.HandleFunc("/api/weight/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-weight")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.list")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	entries, err := h.service.List(ctx, userID)
	if err != nil {
		log.Errorf("list weight entries [%s]: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get weight entries")
		return
	}

	if entries == nil {
		entries = []model.WeightEntry{}
	}
	pkg.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.add")
	defer span.End()

	entry, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	entry.UserID = auth.UserIDFromContext(ctx)

	added, err := h.service.Add(ctx, entry)
	if err != nil {
		h.writeServiceError(w, "add weight entry", err)
		return
	}

	h.metricsManager.CounterWeightEntriesAdded.Inc()
	pkg.WriteJSON(w, http.StatusCreated, added)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.update")
	defer span.End()

	entry, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(ctx)
	entry.ID = mux.Vars(r)["id"]
	entry.UserID = userID

	updated, err := h.service.Update(ctx, userID, entry)
	if err != nil {
		h.writeServiceError(w, "update weight entry", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := h.service.Delete(ctx, auth.UserIDFromContext(ctx), id); err != nil {
		h.writeServiceError(w, "delete weight entry", err)
		return
	}

	pkg.WriteNoContent(w)
}

// HandleTrend returns the latest entry, the first-to-last change and the
// chart series, ascending by date.
func (h *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.trend")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	entries, err := h.service.List(ctx, userID)
	if err != nil {
		log.Errorf("weight trend [%s]: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get weight entries")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, NewTrend(entries))
}

func NewTrend(entries []model.WeightEntry) TrendResponse {
	series := slices.Collect(stats.ChartSeries(entries))
	if series == nil {
		series = []stats.ChartPoint{}
	}
	return TrendResponse{
		Latest: stats.LatestWeight(entries),
		Change: stats.WeightChange(entries),
		Series: series,
	}
}

func decodeEntry(w http.ResponseWriter, r *http.Request) (*model.WeightEntry, bool) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("weight entry, unmarshal json: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	entry := &model.WeightEntry{
		Weight: req.Weight,
		Date:   date,
		Notes:  req.Notes,
	}
	if err := entry.Validate(time.Now()); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return entry, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrEntryNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "weight entry not found")
	case errors.Is(err, model.ErrForbidden):
		pkg.WriteJSONError(w, http.StatusForbidden, "not allowed to modify this weight entry")
	case errors.Is(err, model.ErrInvalid):
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to "+op)
	}
}
