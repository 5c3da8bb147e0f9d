package schema

import (
	"slices"
	"strconv"
	"strings"

	"github.com/0xalexb/confgen/field"
)

// Path locates a field in the document using output keys and list indexes,
// e.g. groups.1.lottery.max_viewers.
type Path []string

// Child returns a new path extended by keys.
func (p Path) Child(keys ...string) Path {
	out := make(Path, 0, len(p)+len(keys))
	out = append(out, p...)

	return append(out, keys...)
}

// String joins the path with dots.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// GroupIndex returns the group index for paths under the group list.
func (p Path) GroupIndex() (int, bool) {
	if len(p) < 2 || p[0] != KeyGroups {
		return 0, false
	}

	idx, err := strconv.Atoi(p[1])
	if err != nil {
		return 0, false
	}

	return idx, true
}

// HasPrefix reports whether p starts with prefix.
func (p Path) HasPrefix(prefix Path) bool {
	return len(p) >= len(prefix) && slices.Equal(p[:len(prefix)], prefix)
}

// Issue is one validation failure located in the document.
type Issue struct {
	Path    Path       `json:"path"`
	Code    field.Code `json:"code"`
	Message string     `json:"message"`
}

// String formats the issue as "path: message".
func (i Issue) String() string {
	return i.Path.String() + ": " + i.Message
}

// Issues is the ordered result of whole-document validation.
type Issues []Issue

// Under returns the issues located at or below prefix.
func (is Issues) Under(prefix Path) Issues {
	var out Issues

	for _, issue := range is {
		if issue.Path.HasPrefix(prefix) {
			out = append(out, issue)
		}
	}

	return out
}

// ForGroup returns the issues of the group at index idx.
func (is Issues) ForGroup(idx int) Issues {
	return is.Under(Path{KeyGroups, strconv.Itoa(idx)})
}

// Messages returns the issue messages in order.
func (is Issues) Messages() []string {
	out := make([]string, 0, len(is))
	for _, issue := range is {
		out = append(out, issue.Message)
	}

	return out
}

// ValidationError wraps a non-empty issue list.
type ValidationError struct {
	Issues Issues
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}

	return "document has " + strconv.Itoa(len(e.Issues)) + " issue(s): " + strings.Join(parts, "; ")
}
