// Package logging builds the log/slog logger used by confgen. Records go out
// as JSON by default, as key=value text, or through charmbracelet/log for a
// human watching the terminal.
package logging
