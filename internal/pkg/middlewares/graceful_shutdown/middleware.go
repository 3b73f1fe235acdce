package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"freightforge/internal/pkg/respond"
)

// Middleware rejects new requests once draining has started and the
// ongoing context is cancelled.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() && ongoingCtx.Err() != nil {
				w.Header().Set("Connection", "close")
				respond.Error(w, http.StatusServiceUnavailable, "portal is shutting down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
