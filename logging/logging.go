package logging

import (
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Output formats understood by NewLogger.
const (
	FormatJSON   = "json"
	FormatText   = "text"
	FormatPretty = "pretty"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string
	Format string
}

// NewLogger creates a slog.Logger writing to w. Level defaults to INFO and
// Format to JSON when empty or unknown. "console" is accepted as an alias for
// text so the tool can share the vocabulary of the drafts it edits. Pretty
// output is meant for a terminal running the bridge.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	opts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	}

	var handler slog.Handler

	switch strings.ToLower(config.Format) {
	case FormatPretty:
		handler = charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
			Prefix:          "confgen",
		})
	case FormatText, "console":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
