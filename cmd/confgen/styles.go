package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/0xalexb/confgen/schema"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
)

//nolint:gochecknoglobals // shared styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	pathStyle    = lipgloss.NewStyle().Foreground(colorWarning)
)

// printIssues writes a report of issues, one per line with the path aligned.
func printIssues(w io.Writer, source string, issues schema.Issues) {
	if len(issues) == 0 {
		fmt.Fprintln(w, successStyle.Render("✓ ")+source+" has no issues")

		return
	}

	noun := "issues"
	if len(issues) == 1 {
		noun = "issue"
	}

	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("✗ %d %s", len(issues), noun))+" in "+source)

	width := 0
	for _, issue := range issues {
		width = max(width, len(issue.Path.String()))
	}

	for _, issue := range issues {
		path := issue.Path.String()
		padding := strings.Repeat(" ", width-len(path))

		fmt.Fprintln(w, "  "+pathStyle.Render(path)+padding+"  "+issue.Message+" "+mutedStyle.Render("("+string(issue.Code)+")"))
	}
}
