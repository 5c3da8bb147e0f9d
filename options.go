package confgen

import (
	"io"

	"github.com/0xalexb/confgen/api"
	"github.com/0xalexb/confgen/config"
	filefetcher "github.com/0xalexb/confgen/config/fetcher/file"
	yamlparser "github.com/0xalexb/confgen/config/parser/yaml"
	"github.com/0xalexb/confgen/diag"
	"github.com/0xalexb/confgen/editor"
	"github.com/0xalexb/confgen/listener"
	"github.com/0xalexb/confgen/schema"

	"go.uber.org/fx"
)

// BridgeName is the listener and handler name used by WithBridge.
const BridgeName = "bridge"

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithHTTPListener adds a named listener module. The name is the fx name tag
// of the http.Handler and listener.Config it consumes.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level: "debug", "info", "warn" or "error".
// Anything else means "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sends log records to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithDraft loads the draft at path into the container as *schema.Document.
// section selects a nested draft ("drafts:staging"); empty means the whole
// file. Validation issues do not fail loading.
func WithDraft(path, section string) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Module("draft",
			fx.Provide(
				fx.Annotate(
					func() *yamlparser.Parser { return yamlparser.NewParser(yamlparser.WithStrict()) },
					fx.As(new(config.Parser)),
				),
			),
			fx.Provide(
				fx.Annotate(
					filefetcher.NewFetcher(path),
					fx.As(new(config.DataFetcher)),
				),
			),
			fx.Provide(config.Provider(new(schema.Document), section, config.WithoutValidation())),
		))
	}
}

// WithSaver makes Export available on the bridge.
func WithSaver(saver editor.Saver) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Supply(fx.Annotate(saver, fx.As(new(editor.Saver)))))
	}
}

// WithClipboard makes Copy available on the bridge.
func WithClipboard(clipboard editor.Clipboard) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Supply(fx.Annotate(clipboard, fx.As(new(editor.Clipboard)))))
	}
}

// WithBridge serves the editor bridge under BridgeName. The session edits the
// draft from WithDraft, or a new document without it.
func WithBridge(opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules,
			fx.Module("editor",
				fx.Provide(
					fx.Annotate(
						newSession,
						fx.ParamTags(`optional:"true"`, `optional:"true"`, `optional:"true"`),
					),
				),
				fx.Provide(func() *diag.Runner { return diag.NewRunner() }),
			),
			api.Module(BridgeName),
			listener.NewModule(BridgeName, opts...),
		)
	}
}

func newSession(doc *schema.Document, saver editor.Saver, clipboard editor.Clipboard) *editor.Session {
	var opts []editor.Option

	if saver != nil {
		opts = append(opts, editor.WithSaver(saver))
	}

	if clipboard != nil {
		opts = append(opts, editor.WithClipboard(clipboard))
	}

	return editor.NewSession(doc, opts...)
}
