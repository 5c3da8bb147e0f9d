package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
)

type tokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
}

func newTokenBucket(perSecond float64, burst int, now func() time.Time) *tokenBucket {
	return &tokenBucket{
		tokens:     float64(burst),
		maxTokens:  float64(burst),
		refillRate: perSecond,
		lastRefill: now(),
		now:        now,
	}
}

func (tb *tokenBucket) take() (bool, time.Duration) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	current := tb.now()
	elapsed := max(0.0, current.Sub(tb.lastRefill).Seconds())
	tb.tokens = math.Min(tb.maxTokens, tb.tokens+elapsed*tb.refillRate)
	tb.lastRefill = current

	if tb.tokens >= 1 {
		tb.tokens--

		return true, 0
	}

	deficit := 1.0 - tb.tokens

	return false, time.Duration(deficit / tb.refillRate * float64(time.Second))
}

// Throttle limits how often the wrapped handler runs, shared across all
// callers. It guards endpoints that spawn host processes. Over the limit it
// answers 429 with Retry-After. Non-positive arguments fall back to one
// request per second with a burst of one.
func Throttle(perSecond float64, burst int) Middleware {
	return throttle(perSecond, burst, time.Now)
}

func throttle(perSecond float64, burst int, now func() time.Time) Middleware {
	if perSecond <= 0 {
		slog.Warn("middleware: throttle rate must be positive, using default", "provided", perSecond, "default", 1.0)

		perSecond = 1.0
	}

	if burst <= 0 {
		slog.Warn("middleware: throttle burst must be positive, using default", "provided", burst, "default", 1)

		burst = 1
	}

	bucket := newTokenBucket(perSecond, burst, now)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, retryAfter := bucket.take()
			if !allowed {
				seconds := max(int(math.Ceil(retryAfter.Seconds())), 1)

				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				WriteError(w, http.StatusTooManyRequests, "too many requests")

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
