package config

import (
	"fmt"
	"log/slog"
)

// Parser defines an interface for parsing draft data into a target structure.
//
// The path parameter selects a section within the data using colon (:) as the
// separator for nested keys, so one file can carry several drafts:
//   - "drafts:staging" navigates to data["drafts"]["staging"]
//   - "" (empty path) means parse the entire document
//
// See config/parser/yaml for the goccy/go-yaml implementation.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading raw draft data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating parsed structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for filling default values after parsing.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// StaticFetcher is a DataFetcher over bytes already in memory, such as a
// request body.
type StaticFetcher []byte

// Fetch returns a copy of the bytes.
func (f StaticFetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f))
	copy(result, f)

	return result, nil
}

// ProviderOption configures a Provider.
type ProviderOption func(*providerOptions)

type providerOptions struct {
	skipValidation bool
}

// WithoutValidation loads the target without running its Validator. Drafts
// with issues stay loadable so they can be fixed in the editor.
func WithoutValidation() ProviderOption {
	return func(opts *providerOptions) {
		opts.skipValidation = true
	}
}

// Provider returns a function that reads, parses, sets defaults, and validates data.
func Provider[T any](target *T, path string, opts ...ProviderOption) func(Parser, DataFetcher) (*T, error) {
	var options providerOptions

	for _, apply := range opts {
		apply(&options)
	}

	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		if options.skipValidation {
			return target, nil
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
