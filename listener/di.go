package listener

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.uber.org/fx"
)

// NewModule creates an fx module for a named listener. The name is the
// module name and the fx name tag under which it expects an http.Handler and
// a Config, and under which it provides the *Server.
// With options, Config is supplied from them; otherwise it must be provided
// by the caller.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(tag))))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(
			fx.Annotate(
				func(shutdowner fx.Shutdowner, handler http.Handler, listenerCfg Config) (*Server, error) {
					return NewServer(name, handler, listenerCfg, func() {
						shutdownErr := shutdowner.Shutdown(fx.ExitCode(1))
						if shutdownErr != nil {
							slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
						}
					})
				},
				fx.ParamTags("", tag, tag),
				fx.ResultTags(tag),
			),
		),
		fx.Invoke(
			fx.Annotate(
				func(lifecycle fx.Lifecycle, srv *Server) {
					lifecycle.Append(fx.Hook{
						OnStart: srv.Start,
						OnStop:  srv.Stop,
					})
				},
				fx.ParamTags("", tag),
			),
		),
	)

	return fx.Module(name, moduleOpts...)
}
