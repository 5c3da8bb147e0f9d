package main

import (
	"os"

	"github.com/0xalexb/confgen"
	"github.com/0xalexb/confgen/clipboard"
	"github.com/0xalexb/confgen/listener"
	"github.com/0xalexb/confgen/persist"

	"github.com/spf13/cobra"
)

type serveFlags struct {
	addr        string
	allowRemote bool
	output      string
}

func newServeCmd(flags *globalFlags) *cobra.Command {
	serve := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor bridge",
		Long: `Serve starts the HTTP bridge the editor UI talks to. It holds the draft
in memory, reports issues as it is edited, and exports or copies the
generated configuration on request. It binds loopback only unless
--allow-remote is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := confgen.NewApp(serveOptions(cmd, flags, serve)...)

			err := app.Err()
			if err != nil {
				return err //nolint:wrapcheck
			}

			return app.Run(cmd.Context()) //nolint:wrapcheck
		},
	}

	cmd.Flags().StringVar(&serve.addr, "addr", listener.DefaultAddress, "listen address")
	cmd.Flags().BoolVar(&serve.allowRemote, "allow-remote", false, "allow a non-loopback listen address")
	cmd.Flags().StringVarP(&serve.output, "output", "o", "", "export destination (default: ask on this terminal)")

	return cmd
}

func serveOptions(cmd *cobra.Command, flags *globalFlags, serve *serveFlags) []confgen.Option {
	listenerOpts := []listener.Option{listener.WithAddress(serve.addr)}
	if serve.allowRemote {
		listenerOpts = append(listenerOpts, listener.WithAllowRemote())
	}

	saver, _ := persist.NewSaver(chooser(cmd, serve.output)) //nolint:errcheck // chooser is never nil

	opts := []confgen.Option{
		confgen.WithLogLevel(flags.logLevel),
		confgen.WithLogFormat(flags.logFormat),
		confgen.WithLogOutput(cmd.ErrOrStderr()),
		confgen.WithSaver(saver),
		confgen.WithBridge(listenerOpts...),
	}

	if flags.draft != "" && flags.draft != stdinPath {
		opts = append(opts, confgen.WithDraft(flags.draft, flags.section))
	}

	// OSC 52 needs the controlling terminal; stdout may be redirected to a log.
	clip, err := clipboard.New(os.Stderr, clipboard.DetectMode())
	if err == nil {
		opts = append(opts, confgen.WithClipboard(clip))
	}

	return opts
}
