package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Option configures a Parser.
type Option func(*Parser)

// WithStrict rejects keys that do not map to a field of the target.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// Parser implements config.Parser for YAML data. JSON input is accepted as well,
// since it is valid YAML.
type Parser struct {
	strict bool
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{strict: false}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse decodes data into target. The path parameter uses colon (:) as the
// separator; an empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	var decodeOpts []yaml.DecodeOption
	if p.strict {
		decodeOpts = append(decodeOpts, yaml.DisallowUnknownField())
	}

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, decodeOpts...)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, decodeOpts...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "drafts" -> "$.drafts"
//   - "drafts:staging" -> "$.drafts.staging"
func convertToYAMLPath(path string) string {
	return "$." + strings.Join(strings.Split(path, ":"), ".")
}
