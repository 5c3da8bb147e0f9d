// Package confgen wires the lottery configuration editor together: an fx
// application carrying the logger, the draft loaded from disk, the editor
// session and the HTTP bridge the editor UI talks to.
//
// The domain packages (field, schema, derive, render) are usable on their
// own; this package only assembles them for the long-running commands.
package confgen
