package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/goccy/go-yaml"
)

// IndentWidth is the number of spaces per nesting level.
const IndentWidth = 2

// DefaultStyle is the chroma style used when none is given.
const DefaultStyle = "monokai"

// ErrNilTree is returned when there is nothing to render.
var ErrNilTree = errors.New("tree must not be nil")

// Render serializes a normalized tree as YAML. Keys keep their insertion
// order and sequences are written as indented block sequences, so equal trees
// always produce identical bytes.
func Render(tree yaml.MapSlice) ([]byte, error) {
	if tree == nil {
		return nil, ErrNilTree
	}

	out, err := yaml.MarshalWithOptions(tree,
		yaml.Indent(IndentWidth),
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return out, nil
}

// Highlight writes src to w with terminal colours. An empty style selects
// DefaultStyle.
func Highlight(w io.Writer, src []byte, style string) error {
	if style == "" {
		style = DefaultStyle
	}

	err := quick.Highlight(w, string(src), "yaml", "terminal256", style)
	if err != nil {
		return fmt.Errorf("highlight error: %w", err)
	}

	return nil
}
