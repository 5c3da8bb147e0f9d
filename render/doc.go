// Package render serializes normalized configuration trees to YAML and
// colours YAML for terminal previews.
package render
