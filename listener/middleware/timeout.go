package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds bridge requests that do not set their own deadline.
const DefaultTimeout = 30 * time.Second

const timeoutBody = `{"error":"request timed out"}`

// Timeout answers 503 with a JSON error body when the handler runs longer
// than d. A non-positive d falls back to DefaultTimeout.
func Timeout(d time.Duration) Middleware {
	if d <= 0 {
		slog.Warn("middleware: timeout must be positive, using default",
			"provided", d, "default", DefaultTimeout)

		d = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, timeoutBody)
	}
}
