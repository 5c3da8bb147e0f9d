package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strconv"
	"sync/atomic"
)

const (
	// RequestIDHeader is the HTTP header used for request IDs.
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 128
)

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{} //nolint:gochecknoglobals

// idSource hands out "<prefix>-<seq>" IDs. The random prefix separates
// bridge runs; the sequence orders requests within one run.
type idSource struct {
	prefix string
	seq    atomic.Uint64
}

func newIDSource() *idSource {
	var raw [4]byte

	_, _ = rand.Read(raw[:])

	return &idSource{prefix: hex.EncodeToString(raw[:])}
}

func (s *idSource) next() string {
	return s.prefix + "-" + strconv.FormatUint(s.seq.Add(1), 10)
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	val, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}

	return val
}

func isPrintableASCII(s string) bool {
	for i := range len(s) {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}

	return true
}

// RequestID assigns each request an ID, stores it in the context and echoes
// it in the X-Request-ID response header. A printable client-supplied ID of
// sane length is reused so the UI can correlate its own calls.
func RequestID() Middleware {
	ids := newIDSource()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength || !isPrintableASCII(id) {
				id = ids.next()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
