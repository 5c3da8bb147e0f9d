package schema

import (
	"slices"
	"strconv"
	"strings"

	"github.com/0xalexb/confgen/field"
)

// Validate checks every field of the document and returns all issues in
// document order. It never stops at the first issue and never mutates d.
func Validate(d *Document) Issues {
	v := &validator{issues: nil}

	v.log(Path{KeyLog}, d.Log)
	validateLottery(v, Path{KeyLottery}, &d.Lottery, PresenceRequired)

	for i := range d.Groups {
		v.group(Path{KeyGroups, strconv.Itoa(i)}, &d.Groups[i])
	}

	v.connection(Path{KeyConnection}, d.Connection)

	return v.issues
}

type validator struct {
	issues Issues
}

func (v *validator) add(path Path, code field.Code, msg string) {
	v.issues = append(v.issues, Issue{Path: path, Code: code, Message: msg})
}

func (v *validator) addViolations(path Path, violations []field.Violation) {
	for _, violation := range violations {
		v.add(path, violation.Code, violation.Message)
	}
}

func (v *validator) number(path Path, entry numberSpec, p Presence, value field.Value) {
	_, _, violations := entry.rule(p).Check(value)
	v.addViolations(path.Child(entry.key), violations)
}

func (v *validator) numberRange(path Path, entry rangeSpec, p Presence, value field.Range) {
	_, _, violations := entry.rule(p).Check(value)
	v.addViolations(path.Child(entry.key), violations)
}

func (v *validator) choice(path Path, label, value string, allowed []string) {
	if slices.Contains(allowed, value) {
		return
	}

	v.add(path, field.CodeEnumUnknown, label+" must be one of "+strings.Join(allowed, ", "))
}

func (v *validator) log(path Path, l Log) {
	v.choice(path.Child(KeyLevel), "Log level", l.Level, logLevels)
	v.choice(path.Child(KeyType), "Log type", l.Type, outputTypes)
}

func validateLottery[F FanClubChoice](v *validator, path Path, l *Lottery[F], p Presence) {
	conditions := path.Child(KeyConditions)

	v.numberRange(conditions, countdownRangeSpec, p, l.Conditions.CountdownRange)
	v.number(conditions, maxViewersSpec, p, l.Conditions.MaxViewers)
	v.number(conditions, minProbabilitySpec, p, l.Conditions.MinProbability)

	if !l.FanClub.Known() {
		v.add(path.Child(KeyFanClub), field.CodeEnumUnknown, "Fan club must be one of "+strings.Join(triStates, ", "))
	}

	v.number(path, switchThresholdSpec, p, l.SwitchThreshold)
	v.numberRange(path, postStaySpec, p, l.PostStay)
}

func (v *validator) group(path Path, g *Group) {
	if strings.TrimSpace(g.ID) == "" {
		v.add(path.Child(KeyID), field.CodeIdentifierMissing, "Group ID must not be empty")
	}

	v.number(path, threadsSpec, PresenceRequired, g.Threads)
	validateLottery(v, path.Child(KeyLottery), &g.Lottery, PresenceInherit)
}

func (v *validator) connection(path Path, c Connection) {
	url := path.Child(KeyURL)

	if strings.TrimSpace(c.URL) == "" {
		v.add(url, field.CodeFieldEmpty, "Connection URL must not be empty")

		return
	}

	if !strings.HasPrefix(c.URL, URLScheme) {
		v.add(url, field.CodeURLSchemeInvalid, "Connection URL must start with "+URLScheme)
	}
}
