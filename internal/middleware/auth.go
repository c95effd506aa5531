package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/wallfit/internal/auth"
	"github.com/2beens/wallfit/internal/telemetry/metrics"
	"github.com/2beens/wallfit/internal/telemetry/tracing"
	"github.com/2beens/wallfit/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type tokenChecker interface {
	UserFromToken(ctx context.Context, token string) (*auth.User, error)
}

type AuthMiddlewareHandler struct {
	tokenChecker   tokenChecker
	metricsManager *metrics.Manager
	allowedPaths   map[string]bool
}

func NewAuthMiddlewareHandler(
	tokenChecker tokenChecker,
	metricsManager *metrics.Manager,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokenChecker:   tokenChecker,
		metricsManager: metricsManager,
		allowedPaths: map[string]bool{
			"/health":       true,
			"/health/ready": true,
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	// unknown paths end up in the not found handler
	return !strings.HasPrefix(path, "/api/")
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := bearerToken(r)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				h.unauthorized(w, "missing authorization token")
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			user, err := h.tokenChecker.UserFromToken(ctx, authToken)
			if errors.Is(err, auth.ErrInvalidToken) {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				h.unauthorized(w, "invalid or expired token")
				span.SetStatus(codes.Error, "invalid-token")
				return
			}
			if err != nil {
				log.Errorf("[failed token check] => %s: %s", r.URL.Path, err)
				pkg.WriteJSONError(w, http.StatusInternalServerError, "authentication failed")
				span.SetStatus(codes.Error, "check-token-err")
				span.RecordError(err)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUser(ctx, user)))
		})
	}
}

func (h *AuthMiddlewareHandler) unauthorized(w http.ResponseWriter, message string) {
	if h.metricsManager != nil {
		h.metricsManager.CounterUnauthorized.Inc()
	}
	pkg.WriteJSONError(w, http.StatusUnauthorized, message)
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
