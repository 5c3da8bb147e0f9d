package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xalexb/confgen"
	"github.com/0xalexb/confgen/field"
	"github.com/0xalexb/confgen/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brokenDraft = `
lottery:
  conditions:
    countdown_range: {start: 30, end: 180}
    max_viewers: 5000
    min_probability: 80
  fan_club: false
  switch_threshold: ""
  post_stay: {start: 5, end: 10}
groups:
  - id: g1
    threads: "2.5"
    inherit: true
connection:
  url: redis://localhost:6379
`

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(append(args, "--log-format", "text"))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(t.Context())

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeDraft(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "draft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	var exitErr *ExitError

	require.ErrorAs(t, err, &exitErr)

	return exitErr.Code
}

func TestNew_PrintsDefaults(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "new", "--group", "g1", "--group", "g2")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "max_viewers: 5000")
	assert.Contains(t, res.stdout, "id: g1")
	assert.Contains(t, res.stdout, "id: g2")
}

func TestNew_WritesFileThatValidates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.yaml")

	res := execute(t, "", "new", "-o", path, "--group", "g1")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "draft written to")

	res = execute(t, "", "validate", "-f", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "has no issues")
}

func TestValidate_NewDraftHasNoIssues(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "validate")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "new draft has no issues")
}

func TestValidate_ListsIssues(t *testing.T) {
	t.Parallel()

	path := writeDraft(t, brokenDraft)

	res := execute(t, "", "validate", "-f", path)

	assert.Equal(t, exitIssues, exitCode(t, res.err))
	assert.Contains(t, res.stdout, "1 issue")
	assert.Contains(t, res.stdout, "groups.0.threads")
	assert.Contains(t, res.stdout, string(field.CodeFieldNotInteger))
}

func TestValidate_JSON(t *testing.T) {
	t.Parallel()

	res := execute(t, brokenDraft, "validate", "-f", "-", "--json")

	assert.Equal(t, exitIssues, exitCode(t, res.err))

	var issues schema.Issues

	require.NoError(t, json.Unmarshal([]byte(res.stdout), &issues))
	require.Len(t, issues, 1)
	assert.Equal(t, "groups.0.threads", issues[0].Path.String())
	assert.Equal(t, field.CodeFieldNotInteger, issues[0].Code)
}

func TestValidate_JSONEmptyList(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "validate", "--json")

	require.NoError(t, res.err)
	assert.JSONEq(t, "[]", res.stdout)
}

func TestValidate_Section(t *testing.T) {
	t.Parallel()

	path := writeDraft(t, "drafts:\n  staging:\n"+indent(brokenDraft, "    "))

	res := execute(t, "", "validate", "-f", path, "--section", "drafts:staging")
	assert.Equal(t, exitIssues, exitCode(t, res.err))

	res = execute(t, "", "validate", "-f", path, "--section", "drafts:missing")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "drafts:missing")
}

func TestValidate_MissingFile(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "validate", "-f", filepath.Join(t.TempDir(), "nope.yaml"))

	require.ErrorIs(t, res.err, os.ErrNotExist)
}

func TestValidate_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	res := execute(t, "connection: {urll: redis://x}\n", "validate", "-f", "-")

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "urll")
}

func TestRender_Plain(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "render", "--color", "never")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, schema.DefaultURL)
	assert.NotContains(t, res.stdout, "\x1b[")
}

func TestRender_Highlighted(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "render", "--color", "always")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "\x1b[")
}

func TestRender_RefusesInvalidDraft(t *testing.T) {
	t.Parallel()

	res := execute(t, brokenDraft, "render", "-f", "-", "--color", "never")

	assert.Equal(t, exitIssues, exitCode(t, res.err))
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "groups.0.threads")
}

func TestRender_BadColor(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "render", "--color", "sometimes")

	require.ErrorIs(t, res.err, errBadColor)
}

func TestExport_ToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lottery.yaml")

	res := execute(t, "", "export", "-o", path)

	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "configuration written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), schema.DefaultURL)
}

func TestExport_PromptCanceled(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "export")

	assert.Equal(t, exitCanceled, exitCode(t, res.err))
	assert.Contains(t, res.stderr, "Save to [")
	assert.Contains(t, res.stderr, "export canceled")
}

func TestExport_PromptAnswered(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "answered.yaml")

	res := execute(t, path+"\n", "export")

	require.NoError(t, res.err)
	assert.FileExists(t, path)
}

func TestExport_RefusesInvalidDraft(t *testing.T) {
	t.Parallel()

	draft := writeDraft(t, brokenDraft)
	path := filepath.Join(t.TempDir(), "lottery.yaml")

	res := execute(t, "", "export", "-f", draft, "-o", path)

	assert.Equal(t, exitIssues, exitCode(t, res.err))
	assert.NoFileExists(t, path)
}

func TestCopy_WritesOSC52(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "copy")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "]52;c;")
	assert.Contains(t, res.stderr, "configuration copied")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "version")

	require.NoError(t, res.err)
	assert.Equal(t, confgen.VersionString()+"\n", res.stdout)
}

func TestServe_RejectsRemoteAddress(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "serve", "--addr", "0.0.0.0:0")

	require.Error(t, res.err)
}

func TestWantColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode    string
		want    bool
		wantErr bool
	}{
		{mode: colorAlways, want: true},
		{mode: colorNever, want: false},
		{mode: colorAuto, want: false},
		{mode: "rainbow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			t.Parallel()

			got, err := wantColor(tt.mode, &bytes.Buffer{})
			if tt.wantErr {
				require.ErrorIs(t, err, errBadColor)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimPrefix(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}

	return strings.Join(lines, "\n")
}
