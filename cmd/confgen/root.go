package main

import (
	"io"
	"log/slog"

	"github.com/0xalexb/confgen/config"
	filefetcher "github.com/0xalexb/confgen/config/fetcher/file"
	yamlparser "github.com/0xalexb/confgen/config/parser/yaml"
	"github.com/0xalexb/confgen/logging"
	"github.com/0xalexb/confgen/schema"

	"github.com/spf13/cobra"
)

const stdinPath = "-"

type globalFlags struct {
	draft     string
	section   string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "confgen",
		Short: "Lottery configuration editor and generator",
		Long: titleStyle.Render("confgen") + mutedStyle.Render(" - lottery configuration editor") + `

confgen validates configuration drafts and generates the normalized
configuration file the lottery service reads. Drafts are YAML or JSON.
Numeric fields may hold free text while editing; generation is refused
until every issue is fixed.

` + mutedStyle.Render("Examples:") + `
  confgen new -o draft.yaml        Write a draft with default values
  confgen validate -f draft.yaml   List validation issues
  confgen render -f draft.yaml     Print the generated configuration
  confgen serve -f draft.yaml      Serve the editor bridge on 127.0.0.1`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(logging.NewLogger(
				logging.LoggerConfig{Level: flags.logLevel, Format: flags.logFormat},
				cmd.ErrOrStderr(),
			))
		},
	}

	pflags := root.PersistentFlags()
	pflags.StringVarP(&flags.draft, "draft", "f", "", `draft file, "-" reads stdin (default: a new draft)`)
	pflags.StringVar(&flags.section, "section", "", `colon-separated path of the draft inside the file, e.g. "drafts:staging"`)
	pflags.StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pflags.StringVar(&flags.logFormat, "log-format", logging.FormatPretty, "log format: pretty, text, json")

	root.AddCommand(
		newNewCmd(),
		newValidateCmd(flags),
		newRenderCmd(flags),
		newExportCmd(flags),
		newCopyCmd(flags),
		newServeCmd(flags),
		newDiagCmd(),
		newVersionCmd(),
	)

	return root
}

// loadDraft reads the draft named by the flags. Validation issues do not
// fail loading; callers decide what to do with them.
func loadDraft(cmd *cobra.Command, flags *globalFlags) (*schema.Document, string, error) {
	load := config.Provider(&schema.Document{}, flags.section, config.WithoutValidation())
	parser := yamlparser.NewParser(yamlparser.WithStrict())

	switch flags.draft {
	case "":
		return schema.NewDocument(), "new draft", nil
	case stdinPath:
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), filefetcher.MaxDraftSize+1))
		if err != nil {
			return nil, "", err //nolint:wrapcheck
		}

		if len(data) > filefetcher.MaxDraftSize {
			return nil, "", filefetcher.ErrDraftTooLarge
		}

		doc, err := load(parser, config.StaticFetcher(data))

		return doc, "stdin", err
	default:
		fetcher, err := filefetcher.NewFetcher(flags.draft)()
		if err != nil {
			return nil, "", err //nolint:wrapcheck
		}

		doc, err := load(parser, fetcher)

		return doc, fetcher.Path(), err
	}
}
