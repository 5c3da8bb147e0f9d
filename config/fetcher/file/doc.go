// Package file reads configuration drafts from disk.
//
// The draft is read once when the Fetcher is constructed, so a later edit of
// the file does not change what an already loaded editor session sees. Files
// larger than MaxDraftSize are refused.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("draft.yaml")()
//	if err != nil {
//	    // missing file, directory, too large
//	}
//	doc, err := config.Provider(&schema.Document{}, "")(yaml.NewParser(), fetcher)
package file
