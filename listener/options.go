package listener

// Option defines a function type for configuring the listener.
type Option func(*Config)

// WithAddress sets the address for the listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithAllowRemote permits binding a non-loopback address.
func WithAllowRemote() Option {
	return func(cfg *Config) {
		cfg.AllowRemote = true
	}
}
