package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/wallfit/internal/telemetry/metrics"
	"github.com/2beens/wallfit/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=rate_limiting_mocks_test.go -package=middleware_test

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// NewLimit builds a limit of requests per window, e.g. 100 per 15 minutes.
func NewLimit(requests int, window time.Duration) redis_rate.Limit {
	return redis_rate.Limit{
		Rate:   requests,
		Burst:  requests,
		Period: window,
	}
}

// RateLimit limits requests per client IP. When the limiter itself is
// unavailable the request is let through.
func RateLimit(
	rateLimiter RequestRateLimiter,
	metricsManager *metrics.Manager,
	limit redis_rate.Limit,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			clientIP, err := pkg.ReadUserIP(r)
			if err != nil {
				log.Debugf("rate limit: %s", err)
				clientIP = r.RemoteAddr
			}

			res, err := rateLimiter.Allow(r.Context(), "rl:"+clientIP, limit)
			if err != nil {
				log.Errorf("rate limit [%s]: %s", clientIP, err)
				next.ServeHTTP(w, r)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			retryAfter := int(res.RetryAfter.Round(time.Second).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.WriteJSONError(w, http.StatusTooManyRequests, "too many requests, please try again later")
		})
	}
}
