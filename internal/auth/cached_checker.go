package auth

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/wallfit/internal/telemetry/metrics"
)

// CachedChecker remembers successfully verified tokens for a short TTL,
// so a page load firing several API calls hits the provider once.
// Rejections are never cached.
type CachedChecker struct {
	next           Checker
	cache          *freecache.Cache
	ttlSeconds     int
	metricsManager *metrics.Manager
}

func NewCachedChecker(next Checker, cacheSizeMB, ttlSeconds int, metricsManager *metrics.Manager) *CachedChecker {
	return &CachedChecker{
		next:           next,
		cache:          freecache.NewCache(cacheSizeMB * 1024 * 1024),
		ttlSeconds:     ttlSeconds,
		metricsManager: metricsManager,
	}
}

func (c *CachedChecker) UserFromToken(ctx context.Context, token string) (*User, error) {
	key := tokenKey(token)

	if cached, err := c.cache.Get(key); err == nil {
		var user User
		if err := json.Unmarshal(cached, &user); err == nil {
			c.observe("hit")
			return &user, nil
		}
		c.cache.Del(key)
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("auth cache get: %s", err)
	}
	c.observe("miss")

	user, err := c.next.UserFromToken(ctx, token)
	if err != nil {
		return nil, err
	}

	userBytes, err := json.Marshal(user)
	if err != nil {
		return user, nil
	}
	if err := c.cache.Set(key, userBytes, c.ttlSeconds); err != nil {
		log.Warnf("auth cache set: %s", err)
	}

	return user, nil
}

func (c *CachedChecker) observe(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterAuthCacheHits.WithLabelValues(result).Inc()
	}
}

func tokenKey(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}
