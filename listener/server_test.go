package listener

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	return ln.Addr().String()
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req) //nolint:gosec // G704: test code, URL from test server
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestNewServer_SetsDefaultsBeforeValidation(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, err := NewServer("bridge", handler, Config{}, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, srv.Addr())
	assert.Equal(t, "http://"+DefaultAddress, srv.URL())
}

func TestNewServer_Errors(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	tests := []struct {
		name    string
		srvName string
		handler http.Handler
		cfg     Config
		wantErr error
	}{
		{name: "empty name", handler: handler, wantErr: ErrEmptyName},
		{name: "nil handler", srvName: "bridge", wantErr: ErrNilHandler},
		{name: "remote address", srvName: "bridge", handler: handler, cfg: Config{Address: ":80"}, wantErr: ErrRemoteAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, err := NewServer(tt.srvName, tt.handler, tt.cfg, nil)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, srv)
		})
	}
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()

	addr := freePort(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, "hello")
	})

	srv, err := NewServer("bridge", handler, Config{Address: addr}, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Start(context.Background()))

	status, body := get(t, srv.URL())
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", body)

	require.NoError(t, srv.Stop(context.Background()))

	dialer := net.Dialer{Timeout: 100 * time.Millisecond}

	conn, dialErr := dialer.DialContext(context.Background(), "tcp", addr)
	if dialErr == nil {
		_ = conn.Close()
	}

	assert.Error(t, dialErr, "should not be able to connect after stop")
}

func TestServer_AddrReportsBoundPort(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, err := NewServer("bridge", handler, Config{Address: "127.0.0.1:0"}, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Start(context.Background()))

	t.Cleanup(func() { _ = srv.Stop(context.Background()) })

	assert.NotEqual(t, "127.0.0.1:0", srv.Addr())

	status, _ := get(t, srv.URL())
	assert.Equal(t, http.StatusOK, status)
}

func TestServer_StartTwice(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, err := NewServer("bridge", handler, Config{Address: "127.0.0.1:0"}, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Start(context.Background()))

	t.Cleanup(func() { _ = srv.Stop(context.Background()) })

	require.ErrorIs(t, srv.Start(context.Background()), ErrAlreadyStarted)
}

func TestServer_StopBeforeStart(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, err := NewServer("bridge", handler, Config{}, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Stop(context.Background()))
}

func TestServer_StartFailure(t *testing.T) {
	t.Parallel()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, err := NewServer("fail", handler, Config{Address: ln.Addr().String()}, nil)
	require.NoError(t, err)

	err = srv.Start(context.Background())
	require.ErrorIs(t, err, ErrListenFailed, "should fail when port is already in use")
}

func TestServer_ServeErrorCallsOnServeErr(t *testing.T) {
	t.Parallel()

	var called atomic.Bool

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, err := NewServer("bridge", handler, Config{Address: freePort(t)}, func() {
		called.Store(true)
	})
	require.NoError(t, err)

	require.NoError(t, srv.Start(context.Background()))

	// Closing the raw listener makes Serve fail with something other than ErrServerClosed.
	_ = srv.listener.Close()

	assert.Eventually(t, called.Load, time.Second, 10*time.Millisecond)
}

func TestServer_ServeError_NilCallback(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, err := NewServer("bridge", handler, Config{Address: freePort(t)}, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Start(context.Background()))

	_ = srv.listener.Close()

	time.Sleep(100 * time.Millisecond)
}

func TestServer_StopWithCancelledContext(t *testing.T) {
	t.Parallel()

	addr := freePort(t)
	received := make(chan struct{})

	handler := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		close(received)
		<-r.Context().Done()
	})

	srv, err := NewServer("bridge", handler, Config{Address: addr}, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Start(context.Background()))

	reqCtx, reqCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer reqCancel()

	go func() {
		req, reqErr := http.NewRequestWithContext(reqCtx, http.MethodGet, "http://"+addr, nil)
		if reqErr != nil {
			return
		}

		resp, doErr := http.DefaultClient.Do(req) //nolint:gosec // G704: test code, URL from test server
		if doErr == nil {
			_ = resp.Body.Close()
		}
	}()

	<-received

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = srv.Stop(ctx)
	require.ErrorIs(t, err, ErrShutdownFailed)
}
