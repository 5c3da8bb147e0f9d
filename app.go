package confgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/0xalexb/confgen/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// StopTimeout bounds how long Run waits for in-flight requests on shutdown.
const StopTimeout = 15 * time.Second

var errAppNotInitialized = errors.New("app not initialized")

// ErrAbnormalShutdown is returned by Run when a module shut the app down
// with a non-zero exit code.
var ErrAbnormalShutdown = errors.New("app shut down abnormally")

// App is the fx application behind the long-running confgen commands.
type App struct {
	app *fx.App
}

// NewApp creates an App from the given options.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	out := options.LogOutput
	if out == nil {
		out = os.Stderr
	}

	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := createLogger(loggerConfig, out)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Options(options.Modules...),
	)
}

func createLogger(config logging.LoggerConfig, w io.Writer) *slog.Logger {
	return logging.NewLogger(config, w)
}

// Err reports an error from building the application graph, such as a draft
// that could not be read.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck // fx already names the failing constructor
}

// Start runs the OnStart hooks: the draft is loaded and the bridge listener
// is bound by the time it returns.
func (app *App) Start(ctx context.Context) error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}

	return nil
}

// Run starts the app and serves until ctx is done or a module requests
// shutdown, then stops it within StopTimeout. A shutdown requested with a
// non-zero exit code, as the bridge listener does when serving fails, is
// reported as ErrAbnormalShutdown.
func (app *App) Run(ctx context.Context) error {
	err := app.Start(ctx)
	if err != nil {
		return err
	}

	exitCode := 0

	select {
	case <-ctx.Done():
		slog.Info("shutting down", "reason", context.Cause(ctx))
	case sig := <-app.app.Wait():
		exitCode = sig.ExitCode
		slog.Info("shutdown requested", "exit_code", exitCode)
	}

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), StopTimeout)
	defer cancel()

	err = app.Stop(stopCtx)
	if err != nil {
		return err
	}

	if exitCode != 0 {
		return fmt.Errorf("%w: exit code %d", ErrAbnormalShutdown, exitCode)
	}

	return nil
}

// Stop runs the OnStop hooks, draining in-flight bridge requests until ctx
// is done.
func (app *App) Stop(ctx context.Context) error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Stop(ctx)
	if err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}

	return nil
}
