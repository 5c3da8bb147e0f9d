package schema

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidTriState is returned when a fan club selector is neither a string, a boolean nor null.
var ErrInvalidTriState = errors.New("fan club selector must be inherit, true or false")

// FanClubChoice is the fan club participation setting of a lottery section.
type FanClubChoice interface {
	Flag | TriState

	// Resolve returns the participation value and whether it is set explicitly.
	Resolve() (value bool, set bool)
	// Known reports whether the choice is a recognized value.
	Known() bool
}

// Flag is a plain fan club switch used by the global section. It is always set.
type Flag bool

// Resolve implements FanClubChoice.
func (f Flag) Resolve() (bool, bool) {
	return bool(f), true
}

// Known implements FanClubChoice.
func (f Flag) Known() bool {
	return true
}

// TriState is a fan club selector that can defer to the global section.
type TriState string

// TriState values.
const (
	TriInherit TriState = "inherit"
	TriTrue    TriState = "true"
	TriFalse   TriState = "false"
)

// Resolve implements FanClubChoice. Inherit and unknown values are not set.
func (t TriState) Resolve() (bool, bool) {
	switch t {
	case TriTrue:
		return true, true
	case TriFalse:
		return false, true
	case TriInherit:
		return false, false
	default:
		return false, false
	}
}

// Known implements FanClubChoice. An empty selector counts as inherit.
func (t TriState) Known() bool {
	switch t {
	case TriInherit, TriTrue, TriFalse, "":
		return true
	default:
		return false
	}
}

// UnmarshalYAML accepts the selector as text or as a boolean; null inherits.
func (t *TriState) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	switch typed := raw.(type) {
	case nil:
		*t = TriInherit
	case bool:
		*t = TriState(strconv.FormatBool(typed))
	case string:
		*t = TriState(typed)
	default:
		return fmt.Errorf("%w: got %T", ErrInvalidTriState, raw)
	}

	return nil
}
