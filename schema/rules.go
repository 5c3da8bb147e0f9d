package schema

import (
	"github.com/0xalexb/confgen/field"
)

// Presence is the requiredness policy a lottery section is validated under.
type Presence int

const (
	// PresenceRequired applies to the global section: policy-bound fields must be filled.
	PresenceRequired Presence = iota
	// PresenceInherit applies to group overrides: every field may be left empty to inherit.
	PresenceInherit
)

type requirement int

const (
	never requirement = iota
	always
	byPolicy
)

func (r requirement) required(p Presence) bool {
	switch r {
	case always:
		return true
	case byPolicy:
		return p == PresenceRequired
	case never:
		return false
	default:
		return false
	}
}

type numberSpec struct {
	key      string
	label    string
	min      field.Bound
	max      field.Bound
	integer  bool
	required requirement
}

func (s numberSpec) rule(p Presence) field.Rule {
	return field.Rule{
		Label:    s.label,
		Min:      s.min,
		Max:      s.max,
		Integer:  s.integer,
		Required: s.required.required(p),
	}
}

type rangeSpec struct {
	key      string
	label    string
	min      field.Bound
	required requirement
}

func (s rangeSpec) rule(p Presence) field.RangeRule {
	return field.RangeRule{
		Label:    s.label,
		Min:      s.min,
		Integer:  false,
		Required: s.required.required(p),
	}
}

//nolint:gochecknoglobals // static rule table.
var (
	countdownRangeSpec = rangeSpec{
		key:      KeyCountdownRange,
		label:    "Countdown range",
		min:      field.Limit(0),
		required: byPolicy,
	}
	maxViewersSpec = numberSpec{
		key:      KeyMaxViewers,
		label:    "Max viewers",
		min:      field.Limit(0),
		max:      field.Unbounded(),
		integer:  true,
		required: byPolicy,
	}
	minProbabilitySpec = numberSpec{
		key:      KeyMinProbability,
		label:    "Min probability",
		min:      field.Limit(0),
		max:      field.Limit(100),
		integer:  true,
		required: byPolicy,
	}
	switchThresholdSpec = numberSpec{
		key:      KeySwitchThreshold,
		label:    "Switch threshold",
		min:      field.Limit(0),
		max:      field.Unbounded(),
		integer:  true,
		required: never,
	}
	postStaySpec = rangeSpec{
		key:      KeyPostStay,
		label:    "Post-stay duration",
		min:      field.Limit(0),
		required: byPolicy,
	}
	threadsSpec = numberSpec{
		key:      KeyThreads,
		label:    "Threads",
		min:      field.Limit(1),
		max:      field.Unbounded(),
		integer:  true,
		required: always,
	}
)

//nolint:gochecknoglobals // static enum sets.
var (
	logLevels   = []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
	outputTypes = []string{OutputConsole, OutputJSON}
	triStates   = []string{string(TriInherit), string(TriTrue), string(TriFalse)}
)
