// Package config loads configuration drafts through a small pipeline of
// interfaces.
//
// The pipeline has four extension points:
//   - DataFetcher: retrieves raw draft bytes (file, request body)
//   - Parser: decodes the bytes into the target, with path navigation support
//   - Defaulter: fills defaults after decoding
//   - Validator: validates the result, unless WithoutValidation is given
//
// # Path Navigation
//
// Paths use colon (:) as the separator and select a section of the data:
//
//	"drafts:staging"   -> data["drafts"]["staging"]
//	""                 -> entire document
//
// # Example
//
//	doc := &schema.Document{}
//	load := config.Provider(doc, "", config.WithoutValidation())
//	doc, err := load(yamlparser.NewParser(), config.StaticFetcher(body))
package config
