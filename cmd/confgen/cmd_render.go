package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/confgen/editor"
	"github.com/0xalexb/confgen/render"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var errBadColor = errors.New(`--color must be "auto", "always" or "never"`)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var (
		color string
		style string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the generated configuration",
		Long: `Render prints the normalized configuration generated from the draft.
Drafts with issues are refused and the issues are listed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			highlight, err := wantColor(color, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			doc, source, err := loadDraft(cmd, flags)
			if err != nil {
				return err
			}

			out, issues, err := editor.Generate(doc)
			if err != nil {
				if len(issues) > 0 {
					printIssues(cmd.ErrOrStderr(), source, issues)

					return &ExitError{Code: exitIssues, Err: err}
				}

				return err //nolint:wrapcheck
			}

			if highlight {
				return render.Highlight(cmd.OutOrStdout(), out, style) //nolint:wrapcheck
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().StringVar(&color, "color", colorAuto, "highlight output: auto, always, never")
	cmd.Flags().StringVar(&style, "style", render.DefaultStyle, "chroma style used for highlighting")

	return cmd
}

func wantColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		f, ok := out.(*os.File)

		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("%w, got %q", errBadColor, mode)
	}
}
