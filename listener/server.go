package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// Server timeouts. WriteTimeout leaves room for the slowest bridge route,
// a diagnostic run, behind its own handler timeout.
const (
	ReadHeaderTimeout = 10 * time.Second
	WriteTimeout      = 45 * time.Second
	IdleTimeout       = 2 * time.Minute
)

// Server runs the bridge HTTP server for one named listener.
type Server struct {
	name       string
	config     Config
	server     *http.Server
	onServeErr func()

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
}

// NewServer creates a Server. It applies config defaults and validates the
// config, so a remote address is refused here rather than at Start.
// onServeErr, if non-nil, is called when serving stops with an error.
func NewServer(name string, handler http.Handler, cfg Config, onServeErr func()) (*Server, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if handler == nil {
		return nil, ErrNilHandler
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &Server{
		name:   name,
		config: cfg,
		server: &http.Server{ //nolint:exhaustruct // only relevant fields needed
			Handler:           handler,
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		onServeErr: onServeErr,
		mu:         sync.Mutex{},
		listener:   nil,
		done:       nil,
	}, nil
}

// Addr returns the bound address once started and the configured one before.
// With port 0 this is how callers learn the actual port.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.config.Address
}

// URL returns the base URL of the bridge.
func (s *Server) URL() string {
	return "http://" + s.Addr()
}

// Start binds the configured address and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return ErrAlreadyStarted
	}

	listenCfg := net.ListenConfig{} //nolint:exhaustruct // zero-value defaults are fine

	ln, err := listenCfg.Listen(ctx, "tcp", s.config.Address)
	if err != nil {
		slog.Error("bridge failed to listen", "name", s.name, "address", s.config.Address, "error", err)

		return fmt.Errorf("%w: %w", ErrListenFailed, err)
	}

	s.listener = ln
	s.done = make(chan struct{})

	slog.Info("bridge listening", "name", s.name, "url", "http://"+ln.Addr().String(),
		"remote", s.config.AllowRemote)

	go s.serve(ln, s.done)

	return nil
}

func (s *Server) serve(ln net.Listener, done chan struct{}) {
	defer close(done)

	err := s.server.Serve(ln)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}

	slog.Error("bridge stopped serving", "name", s.name, "error", err)

	if s.onServeErr != nil {
		s.onServeErr()
	}
}

// Stop drains in-flight requests until ctx is done and waits for the serve
// loop to exit. Stopping a server that was never started is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	slog.Info("stopping bridge", "name", s.name)

	err := s.server.Shutdown(ctx)
	if err != nil {
		slog.Error("bridge shutdown failed", "name", s.name, "error", err)

		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	<-done

	return nil
}
