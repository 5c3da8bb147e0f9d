package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// statusWriter captures the status code and response size.
type statusWriter struct {
	http.ResponseWriter

	status  int
	written bool
	bytes   int
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.written {
		w.status = code
		w.written = true

		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.status = http.StatusOK
		w.written = true
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n

	return n, err //nolint:wrapcheck
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Logging returns a middleware that logs one record per bridge request via
// the default slog logger: method, path, status, response size, duration
// and request ID.
// Level is Info below 400, Warn for 4xx and Error for 5xx.
func Logging() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(sw, r)

			if sw.status == 0 {
				sw.status = http.StatusOK
			}

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
			}

			if reqID := GetRequestID(r.Context()); reqID != "" {
				attrs = append(attrs, slog.String("request_id", reqID))
			}

			const msg = "bridge request"

			switch {
			case sw.status >= http.StatusInternalServerError:
				slog.Error(msg, attrs...) //nolint:gosec // G706: msg is a hardcoded constant, not user input.
			case sw.status >= http.StatusBadRequest:
				slog.Warn(msg, attrs...) //nolint:gosec // G706: msg is a hardcoded constant, not user input.
			default:
				slog.Info(msg, attrs...) //nolint:gosec // G706: msg is a hardcoded constant, not user input.
			}
		})
	}
}
