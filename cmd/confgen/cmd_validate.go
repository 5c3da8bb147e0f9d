package main

import (
	"encoding/json"
	"fmt"

	"github.com/0xalexb/confgen/schema"

	"github.com/spf13/cobra"
)

func newValidateCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "List the validation issues of a draft",
		Long: `Validate checks every field of the draft and lists all issues in
document order. The exit status is 2 when there are issues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, source, err := loadDraft(cmd, flags)
			if err != nil {
				return err
			}

			issues := schema.Validate(doc)

			if asJSON {
				if issues == nil {
					issues = schema.Issues{}
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				err = enc.Encode(issues)
				if err != nil {
					return fmt.Errorf("encoding issues: %w", err)
				}
			} else {
				printIssues(cmd.OutOrStdout(), source, issues)
			}

			if len(issues) > 0 {
				return &ExitError{Code: exitIssues, Err: &schema.ValidationError{Issues: issues}}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print issues as JSON")

	return cmd
}
