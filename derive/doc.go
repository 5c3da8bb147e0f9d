// Package derive turns a configuration document into the minimal normalized
// tree written to disk.
//
// The tree is a goccy/go-yaml MapSlice so key order survives rendering.
// Sections and fields are omitted when they carry no concrete value; a group
// whose override section ends up empty has no lottery key at all, which means
// it fully inherits the global section.
package derive
