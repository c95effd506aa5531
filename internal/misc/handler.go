package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/wallfit/internal/auth"
	"github.com/2beens/wallfit/internal/telemetry/tracing"
	"github.com/2beens/wallfit/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=misc_test

type dbPinger interface {
	Ping(ctx context.Context) error
}

const (
	statusOK       = "OK"
	statusDegraded = "DEGRADED"
	checkOK        = "ok"
	checkDisabled  = "disabled"

	readinessTimeout = 2 * time.Second
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
}

type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	db          dbPinger
	redisClient *redis.Client
	versionInfo string
}

// NewHandler builds the health handler. A nil redisClient is reported as
// disabled by the readiness check.
func NewHandler(db dbPinger, redisClient *redis.Client, versionInfo string) *Handler {
	return &Handler{
		db:          db,
		redisClient: redisClient,
		versionInfo: versionInfo,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HandleHealth).Methods("GET", "OPTIONS").Name("health")
	router.HandleFunc("/health/ready", h.HandleReady).Methods("GET", "OPTIONS").Name("ready")
	router.HandleFunc("/api/auth/me", h.HandleMe).Methods("GET", "OPTIONS").Name("auth-me")
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now().UTC(),
		Version:   h.versionInfo,
	})
}

func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	resp := ReadinessResponse{
		Status: statusOK,
		Checks: map[string]string{
			"db":    checkOK,
			"redis": checkOK,
		},
	}

	if err := h.db.Ping(ctx); err != nil {
		log.Warnf("readiness, db ping: %s", err)
		resp.Status = statusDegraded
		resp.Checks["db"] = err.Error()
	}

	if h.redisClient == nil {
		resp.Checks["redis"] = checkDisabled
	} else if err := h.redisClient.Ping(ctx).Err(); err != nil {
		log.Warnf("readiness, redis ping: %s", err)
		resp.Status = statusDegraded
		resp.Checks["redis"] = err.Error()
	}

	span.SetAttributes(attribute.String("status", resp.Status))

	code := http.StatusOK
	if resp.Status != statusOK {
		code = http.StatusServiceUnavailable
	}
	pkg.WriteJSON(w, code, resp)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.me")
	defer span.End()

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	pkg.WriteJSON(w, http.StatusOK, user)
}
