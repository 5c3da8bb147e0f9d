// Package listener runs the HTTP bridge between the editor UI and the host.
package listener

import (
	"errors"
	"fmt"
	"net"
)

// DefaultAddress is the loopback address the bridge listens on.
const DefaultAddress = "127.0.0.1:7420"

var (
	// ErrEmptyAddress is returned when the address is empty.
	ErrEmptyAddress = errors.New("address must not be empty")
	// ErrInvalidAddress is returned when the address is not host:port.
	ErrInvalidAddress = errors.New("address must be host:port")
	// ErrRemoteAddress is returned when the address is not loopback and
	// remote access was not allowed.
	ErrRemoteAddress = errors.New("address is not loopback")
	// ErrListenFailed is returned when the server fails to listen on the configured address.
	ErrListenFailed = errors.New("failed to listen")
	// ErrShutdownFailed is returned when the server fails to shut down gracefully.
	ErrShutdownFailed = errors.New("shutdown failed")
	// ErrEmptyName is returned when the listener name is empty.
	ErrEmptyName = errors.New("listener name must not be empty")
	// ErrNilHandler is returned when a nil http.Handler is provided.
	ErrNilHandler = errors.New("handler must not be nil")
	// ErrAlreadyStarted is returned when Start is called on a running server.
	ErrAlreadyStarted = errors.New("server already started")
)

// Config holds the configuration for the bridge listener. The bridge can
// write files and run a host command, so it binds loopback unless
// AllowRemote is set.
type Config struct {
	Address     string
	AllowRemote bool
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	host, _, err := net.SplitHostPort(c.Address)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidAddress, c.Address, err)
	}

	if !c.AllowRemote && !isLoopback(host) {
		return fmt.Errorf("%w: %q", ErrRemoteAddress, c.Address)
	}

	return nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}

	ip := net.ParseIP(host)

	return ip != nil && ip.IsLoopback()
}
