package main

import (
	"fmt"

	"github.com/0xalexb/confgen/persist"
	"github.com/0xalexb/confgen/schema"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	var (
		output string
		groups []string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Write a new draft with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := schema.NewDocument()
			for _, id := range groups {
				doc.Groups = append(doc.Groups, schema.NewGroup(id))
			}

			out, err := yaml.MarshalWithOptions(doc, yaml.Indent(2), yaml.IndentSequence(true))
			if err != nil {
				return fmt.Errorf("encoding draft: %w", err)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)

				return err //nolint:wrapcheck
			}

			path, err := persist.WriteFile(output, out)
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render("✓ ")+"draft written to "+path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the draft to this file instead of stdout")
	cmd.Flags().StringSliceVar(&groups, "group", nil, "add an inheriting group with this ID (repeatable)")

	return cmd
}
