package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes caps how much of an unread request body is discarded
// before the connection is given up on instead of reused.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest reads whatever the handler left of the request body
// (up to maxDrainBytes) and closes it, so keep-alive connections can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			drained, err := io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes))
			if err != nil {
				log.Tracef("drain request body [%s %s]: %s", r.Method, r.URL.Path, err)
			} else if drained == maxDrainBytes {
				log.Debugf("request body [%s %s] exceeds %d bytes left unread", r.Method, r.URL.Path, maxDrainBytes)
			}
			_ = r.Body.Close()
		})
	}
}
