package middleware

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// OriginOption configures LocalOrigin.
type OriginOption func(*originConfig)

type originConfig struct {
	extraHosts map[string]struct{}
	methods    string
	headers    string
}

// WithAllowedHosts admits browser origins on these hostnames in addition to
// loopback ones.
func WithAllowedHosts(hosts ...string) OriginOption {
	return func(c *originConfig) {
		for _, host := range hosts {
			if host = strings.ToLower(strings.TrimSpace(host)); host != "" {
				c.extraHosts[host] = struct{}{}
			}
		}
	}
}

// LocalOrigin admits requests addressed to a loopback or allowed Host that
// either carry no Origin header or come from a page served on such a host.
// Anything else gets 403, so a web page the user happens to visit cannot
// drive the bridge, even through a DNS name rebound to 127.0.0.1. Preflight
// requests from admitted origins are answered with 204.
func LocalOrigin(opts ...OriginOption) Middleware {
	cfg := &originConfig{
		extraHosts: map[string]struct{}{},
		methods:    "GET, PUT, POST",
		headers:    "Content-Type, " + RequestIDHeader,
	}

	for _, apply := range opts {
		if apply != nil {
			apply(cfg)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			if !cfg.admitsHost(r.Host) {
				WriteError(w, http.StatusForbidden, "host not allowed")

				return
			}

			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)

				return
			}

			if !cfg.admits(origin) {
				WriteError(w, http.StatusForbidden, "origin not allowed")

				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", cfg.methods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.headers)
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (c *originConfig) admits(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}

	return c.allowed(u.Hostname())
}

// admitsHost checks the Host header. An empty one only comes from HTTP/1.0
// clients, which browsers are not.
func (c *originConfig) admitsHost(hostport string) bool {
	if hostport == "" {
		return true
	}

	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		host = strings.TrimSuffix(strings.TrimPrefix(hostport, "["), "]")
	}

	return c.allowed(host)
}

func (c *originConfig) allowed(host string) bool {
	host = strings.ToLower(host)
	if host == "localhost" {
		return true
	}

	if _, ok := c.extraHosts[host]; ok {
		return true
	}

	ip := net.ParseIP(host)

	return ip != nil && ip.IsLoopback()
}
