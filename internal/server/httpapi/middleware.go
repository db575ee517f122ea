package httpapi

import (
	"net/http"
	"sync"
)

// WithCORS adds the permissive CORS headers to every response.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LimiterStats is a snapshot of the limiter counters.
type LimiterStats struct {
	Active int
	Total  int64
}

// ConcurrencyLimiter caps the number of requests handled at once. Requests
// over the cap wait for a free slot until their context ends.
type ConcurrencyLimiter struct {
	slots chan struct{}

	mu    sync.RWMutex
	stats LimiterStats
}

func NewConcurrencyLimiter(limit int) *ConcurrencyLimiter {
	if limit < 1 {
		limit = 1
	}
	return &ConcurrencyLimiter{slots: make(chan struct{}, limit)}
}

func (cl *ConcurrencyLimiter) Limit() int {
	return cap(cl.slots)
}

func (cl *ConcurrencyLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case cl.slots <- struct{}{}:
			cl.update(1)
			defer func() {
				<-cl.slots
				cl.update(-1)
			}()
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
			writeText(w, http.StatusServiceUnavailable, "Service Unavailable")
		}
	})
}

func (cl *ConcurrencyLimiter) update(delta int) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.stats.Active += delta
	if delta > 0 {
		cl.stats.Total++
	}
}

func (cl *ConcurrencyLimiter) Stats() LimiterStats {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return cl.stats
}
