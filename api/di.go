package api

import (
	"fmt"
	"net/http"

	"github.com/0xalexb/confgen/diag"
	"github.com/0xalexb/confgen/editor"

	"go.uber.org/fx"
)

// Module provides the bridge handler as an http.Handler tagged with name,
// which is what listener.NewModule(name) consumes. It needs an
// *editor.Session and a *diag.Runner in the container.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(name string, opts ...Option) fx.Option {
	return fx.Module("api",
		fx.Provide(
			fx.Annotate(
				func(session *editor.Session, runner *diag.Runner) (http.Handler, error) {
					handler, err := New(session, runner, opts...)
					if err != nil {
						return nil, err
					}

					return handler, nil
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
