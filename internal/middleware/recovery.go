package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/wallfit/internal/telemetry/metrics"
	"github.com/2beens/wallfit/pkg"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a JSON 500. The panic is logged
// at error level, which the sentry hook forwards.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				fields := log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  fmt.Sprint(recovered),
				}
				if ip, err := pkg.ReadUserIP(r); err == nil {
					fields["ip"] = ip
				}
				log.WithFields(fields).Errorf("recovered handler panic\n%s", debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
