package middleware

import (
	"log/slog"
	"net/http"
)

// DefaultMaxRequestSize bounds request bodies. A draft document is far
// smaller than this.
const DefaultMaxRequestSize int64 = 1 << 20

// MaxRequestSize limits request bodies with http.MaxBytesReader. Handlers
// see a *http.MaxBytesError when reading past the limit and answer 413.
// A non-positive limit falls back to DefaultMaxRequestSize.
func MaxRequestSize(limit int64) Middleware {
	if limit <= 0 {
		slog.Warn("middleware: request size limit must be positive, using default",
			"provided", limit, "default", DefaultMaxRequestSize)

		limit = DefaultMaxRequestSize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
