// Package yaml provides the YAML parser used to load configuration drafts.
//
// It uses github.com/goccy/go-yaml. Colon-separated paths such as
// "drafts:staging" are converted to YAML path format ("$.drafts.staging") and
// only the selected node is decoded. WithStrict rejects unknown keys, which
// catches misspelled draft fields.
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var doc schema.Document
//	err := parser.Parse(data, &doc, "drafts:staging")
package yaml
