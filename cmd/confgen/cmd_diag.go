package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/0xalexb/confgen/diag"

	"github.com/spf13/cobra"
)

func newDiagCmd() *cobra.Command {
	var (
		timeout time.Duration
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "diag",
		Short: "Run the host diagnostic command",
		Long:  "Diag runs " + diag.Command + " on this host and reports its exit status and output.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := diag.NewRunner(diag.WithTimeout(timeout)).Run(cmd.Context(), diag.Request{Command: diag.Command})

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(res) //nolint:wrapcheck
			}

			out := cmd.OutOrStdout()

			switch {
			case res.Error != "":
				fmt.Fprintln(out, errorStyle.Render("✗ ")+res.Error)
			case res.Signal != nil:
				fmt.Fprintln(out, warningStyle.Render("killed by "+*res.Signal))
			case res.ExitCode != nil && *res.ExitCode == 0:
				fmt.Fprintln(out, successStyle.Render("✓ ")+diag.Command+" exited 0")
			case res.ExitCode != nil:
				fmt.Fprintln(out, errorStyle.Render("✗ ")+fmt.Sprintf("%s exited %d", diag.Command, *res.ExitCode))
			}

			if s := strings.TrimSpace(res.Stdout); s != "" {
				fmt.Fprintln(out, mutedStyle.Render("stdout: ")+s)
			}

			if s := strings.TrimSpace(res.Stderr); s != "" {
				fmt.Fprintln(out, mutedStyle.Render("stderr: ")+s)
			}

			if res.Error != "" || res.Signal != nil || (res.ExitCode != nil && *res.ExitCode != 0) {
				return &ExitError{Code: 1}
			}

			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", diag.DefaultTimeout, "give up after this long")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}
