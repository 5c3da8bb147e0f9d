package api

import "github.com/0xalexb/confgen/config"

// Option configures a Handler.
type Option func(*Handler)

// WithParser replaces the strict YAML parser used for PUT /api/document.
func WithParser(parser config.Parser) Option {
	return func(h *Handler) {
		if parser != nil {
			h.parser = parser
		}
	}
}

// WithAllowedHosts admits browser origins on these hosts besides loopback.
func WithAllowedHosts(hosts ...string) Option {
	return func(h *Handler) {
		h.allowedHosts = append(h.allowedHosts, hosts...)
	}
}

// WithDiagnosticsRate sets how many diagnostic runs per second, with the
// given burst, the bridge accepts.
func WithDiagnosticsRate(perSecond float64, burst int) Option {
	return func(h *Handler) {
		h.diagRate = perSecond
		h.diagBurst = burst
	}
}
