package field_test

import (
	"testing"

	"github.com/0xalexb/confgen/field"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
number: 30
negative: -4
fraction: 2.5
text: "180"
blank: ""
garbage: abc
`)

	var doc struct {
		Number   field.Value `yaml:"number"`
		Negative field.Value `yaml:"negative"`
		Fraction field.Value `yaml:"fraction"`
		Text     field.Value `yaml:"text"`
		Blank    field.Value `yaml:"blank"`
		Garbage  field.Value `yaml:"garbage"`
		Missing  field.Value `yaml:"missing"`
	}

	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, field.Number(30), doc.Number)
	assert.Equal(t, field.Number(-4), doc.Negative)
	assert.Equal(t, field.Number(2.5), doc.Fraction)
	assert.Equal(t, field.Text("180"), doc.Text)
	assert.Equal(t, field.KindEmpty, field.Interpret(doc.Blank).Kind)
	assert.Equal(t, field.KindInvalid, field.Interpret(doc.Garbage).Kind)
	assert.Equal(t, field.KindEmpty, field.Interpret(doc.Missing).Kind)
}

func TestValue_UnmarshalYAML_RejectsNonScalar(t *testing.T) {
	t.Parallel()

	var doc struct {
		Value field.Value `yaml:"value"`
	}

	err := yaml.Unmarshal([]byte("value: [1, 2]\n"), &doc)

	require.Error(t, err)
}

func TestValue_MarshalYAML(t *testing.T) {
	t.Parallel()

	doc := struct {
		Whole    field.Value `yaml:"whole"`
		Fraction field.Value `yaml:"fraction"`
		Text     field.Value `yaml:"text"`
	}{
		Whole:    field.Number(5000),
		Fraction: field.Number(0.5),
		Text:     field.Text("12"),
	}

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var back map[string]any

	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.EqualValues(t, 5000, back["whole"])
	assert.InDelta(t, 0.5, back["fraction"], 0)
	assert.Equal(t, "12", back["text"])
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	for _, raw := range []any{nil, "1", 1, int64(1), uint64(1), 1.0, float32(1)} {
		_, err := field.FromAny(raw)
		require.NoError(t, err, "%T", raw)
	}

	_, err := field.FromAny(true)
	require.ErrorIs(t, err, field.ErrUnsupportedValue)
}
