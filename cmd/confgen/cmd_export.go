package main

import (
	"errors"
	"fmt"

	"github.com/0xalexb/confgen/clipboard"
	"github.com/0xalexb/confgen/editor"
	"github.com/0xalexb/confgen/persist"
	"github.com/0xalexb/confgen/schema"

	"github.com/spf13/cobra"
)

func newExportCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save the generated configuration to a file",
		Long: `Export generates the configuration and saves it. Without --output the
destination is asked for on the terminal; an empty answer takes the
suggested name and end of input cancels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, source, err := loadDraft(cmd, flags)
			if err != nil {
				return err
			}

			saver, err := persist.NewSaver(chooser(cmd, output))
			if err != nil {
				return err //nolint:wrapcheck
			}

			session := editor.NewSession(doc, editor.WithSaver(saver))

			res, err := session.Export(cmd.Context())
			if err != nil {
				return sessionError(cmd, source, err)
			}

			switch {
			case res.Canceled:
				fmt.Fprintln(cmd.ErrOrStderr(), warningStyle.Render("export canceled"))

				return &ExitError{Code: exitCanceled, Err: persist.ErrCanceled}
			case res.Error != "":
				return res.Err() //nolint:wrapcheck
			}

			fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render("✓ ")+"configuration written to "+res.FilePath)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default: ask)")

	return cmd
}

func newCopyCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy the generated configuration to the clipboard",
		Long: `Copy generates the configuration and puts it on the clipboard with an
OSC 52 terminal escape sequence, which also works over SSH. tmux and GNU
screen are detected from the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, source, err := loadDraft(cmd, flags)
			if err != nil {
				return err
			}

			clip, err := clipboard.New(cmd.OutOrStdout(), clipboard.DetectMode())
			if err != nil {
				return err //nolint:wrapcheck
			}

			err = editor.NewSession(doc, editor.WithClipboard(clip)).Copy(cmd.Context())
			if err != nil {
				return sessionError(cmd, source, err)
			}

			fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render("✓ ")+"configuration copied")

			return nil
		},
	}
}

func chooser(cmd *cobra.Command, output string) persist.Chooser { //nolint:ireturn
	if output != "" {
		return persist.FixedChooser{Path: output}
	}

	return persist.NewPromptChooser(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// sessionError prints the issues behind an invalid document and maps it to
// the issues exit code.
func sessionError(cmd *cobra.Command, source string, err error) error {
	var validationErr *schema.ValidationError
	if errors.As(err, &validationErr) {
		printIssues(cmd.ErrOrStderr(), source, validationErr.Issues)

		return &ExitError{Code: exitIssues, Err: err}
	}

	return err
}
