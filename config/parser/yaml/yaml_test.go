package yaml

import (
	"testing"

	"github.com/0xalexb/confgen/field"
	"github.com/0xalexb/confgen/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiDraft = `
drafts:
  staging:
    log: {level: debug, type: json}
    groups:
      - id: g1
        threads: "4"
    connection: {url: "redis://staging:6379"}
  production:
    log: {level: warn, type: console}
    connection: {url: "redis://prod:6379"}
`

func TestParser_Parse_EntireDraft(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
log:
  level: error
lottery:
  conditions:
    max_viewers: 10
connection:
  url: redis://x
`)

	var doc schema.Document

	err := parser.Parse(data, &doc, "")

	require.NoError(t, err)
	assert.Equal(t, schema.LevelError, doc.Log.Level)
	assert.Equal(t, field.Number(10), doc.Lottery.Conditions.MaxViewers)
	assert.Equal(t, "redis://x", doc.Connection.URL)
}

func TestParser_Parse_JSONDraft(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`{"groups": [{"id": "g1", "threads": 2, "lottery": {"fan_club": "true"}}], "connection": {"url": "redis://x"}}`)

	var doc schema.Document

	err := parser.Parse(data, &doc, "")

	require.NoError(t, err)
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, schema.TriTrue, doc.Groups[0].Lottery.FanClub)
	assert.Equal(t, field.Number(2), doc.Groups[0].Threads)
}

func TestParser_Parse_SelectsDraftByPath(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	var staging schema.Document

	require.NoError(t, parser.Parse([]byte(multiDraft), &staging, "drafts:staging"))
	assert.Equal(t, schema.LevelDebug, staging.Log.Level)
	require.Len(t, staging.Groups, 1)
	assert.Equal(t, field.Text("4"), staging.Groups[0].Threads)

	var production schema.Document

	require.NoError(t, parser.Parse([]byte(multiDraft), &production, "drafts:production"))
	assert.Equal(t, schema.LevelWarn, production.Log.Level)
	assert.Empty(t, production.Groups)
}

func TestParser_Parse_ScalarByPath(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	var url string

	err := parser.Parse([]byte(multiDraft), &url, "drafts:production:connection:url")

	require.NoError(t, err)
	assert.Equal(t, "redis://prod:6379", url)
}

func TestParser_Parse_NonExistentPath(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	var doc schema.Document

	err := parser.Parse([]byte(multiDraft), &doc, "drafts:qa")

	require.ErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), "drafts:qa")
}

func TestParser_Parse_NonMappingIntermediate(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	var result struct {
		Host string `yaml:"host"`
	}

	err := parser.Parse([]byte(`drafts: "just a string"`), &result, "drafts:nested")

	require.Error(t, err)
}

func TestParser_Parse_Strict(t *testing.T) {
	t.Parallel()

	data := []byte(`
connection:
  url: redis://x
  urll: typo
`)

	var lenient schema.Document

	require.NoError(t, NewParser().Parse(data, &lenient, ""))

	var strict schema.Document

	err := NewParser(WithStrict()).Parse(data, &strict, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "urll")
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	var result struct{}

	for _, data := range [][]byte{nil, {}, []byte("  \n\t")} {
		err := parser.Parse(data, &result, "")

		require.ErrorIs(t, err, ErrEmptyData)
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
invalid: yaml: content: [
`)

	var result struct{}

	err := parser.Parse(data, &result, "")

	require.Error(t, err)
}

func TestParser_Parse_RejectsNonScalarNumbers(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	var doc schema.Document

	err := parser.Parse([]byte("lottery: {conditions: {max_viewers: {a: 1}}}\n"), &doc, "")

	require.Error(t, err)
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single key",
			input:    "drafts",
			expected: "$.drafts",
		},
		{
			name:     "two level path",
			input:    "drafts:staging",
			expected: "$.drafts.staging",
		},
		{
			name:     "three level path",
			input:    "drafts:staging:connection",
			expected: "$.drafts.staging.connection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, convertToYAMLPath(tt.input))
		})
	}
}
