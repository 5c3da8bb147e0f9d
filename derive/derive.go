package derive

import (
	"math"

	"github.com/0xalexb/confgen/field"
	"github.com/0xalexb/confgen/schema"

	"github.com/goccy/go-yaml"
)

// Derive builds the normalized configuration tree of d. Keys are inserted in
// a fixed order (log, lottery, groups, connection) so rendering is stable.
//
// Derive is meant to run on documents without validation issues, but it never
// fails: a field that does not resolve to a concrete value is omitted.
func Derive(d *schema.Document) yaml.MapSlice {
	tree := yaml.MapSlice{
		{Key: schema.KeyLog, Value: logSection(d.Log)},
		{Key: schema.KeyLottery, Value: lotterySection(&d.Lottery)},
	}

	if len(d.Groups) > 0 {
		groups := make([]any, 0, len(d.Groups))
		for i := range d.Groups {
			groups = append(groups, groupEntry(&d.Groups[i]))
		}

		tree = append(tree, yaml.MapItem{Key: schema.KeyGroups, Value: groups})
	}

	return append(tree, yaml.MapItem{
		Key:   schema.KeyConnection,
		Value: yaml.MapSlice{{Key: schema.KeyURL, Value: d.Connection.URL}},
	})
}

func logSection(l schema.Log) yaml.MapSlice {
	return yaml.MapSlice{
		{Key: schema.KeyDisabled, Value: l.Disabled},
		{Key: schema.KeyLevel, Value: l.Level},
		{Key: schema.KeyType, Value: l.Type},
	}
}

// lotterySection applies the presence rule shared by the global section and
// group overrides. fan_club is emitted only when the choice is set.
func lotterySection[F schema.FanClubChoice](l *schema.Lottery[F]) yaml.MapSlice {
	var out yaml.MapSlice

	if conditions := conditionsSection(l.Conditions); len(conditions) > 0 {
		out = append(out, yaml.MapItem{Key: schema.KeyConditions, Value: conditions})
	}

	if fanClub, set := l.FanClub.Resolve(); set {
		out = append(out, yaml.MapItem{Key: schema.KeyFanClub, Value: fanClub})
	}

	if threshold, ok := field.Resolved(l.SwitchThreshold); ok {
		out = append(out, yaml.MapItem{Key: schema.KeySwitchThreshold, Value: number(threshold)})
	}

	if pair, ok := field.Resolve(l.PostStay); ok {
		out = append(out, yaml.MapItem{Key: schema.KeyPostStay, Value: pairValue(pair)})
	}

	return out
}

func conditionsSection(c schema.Conditions) yaml.MapSlice {
	var out yaml.MapSlice

	if pair, ok := field.Resolve(c.CountdownRange); ok {
		out = append(out, yaml.MapItem{Key: schema.KeyCountdownRange, Value: pairValue(pair)})
	}

	if viewers, ok := field.Resolved(c.MaxViewers); ok {
		out = append(out, yaml.MapItem{Key: schema.KeyMaxViewers, Value: number(viewers)})
	}

	if probability, ok := field.Resolved(c.MinProbability); ok {
		out = append(out, yaml.MapItem{Key: schema.KeyMinProbability, Value: number(probability)})
	}

	return out
}

func groupEntry(g *schema.Group) yaml.MapSlice {
	out := yaml.MapSlice{
		{Key: schema.KeyID, Value: g.ID},
		{Key: schema.KeyInherit, Value: g.Inherit},
	}

	if threads, ok := threadCount(g.Threads); ok {
		out = append(out, yaml.MapItem{Key: schema.KeyThreads, Value: threads})
	}

	if override := lotterySection(&g.Lottery); len(override) > 0 {
		out = append(out, yaml.MapItem{Key: schema.KeyLottery, Value: override})
	}

	return out
}

// threadCount truncates toward zero. Validation rejects fractional counts, so
// truncation only matters for unvalidated input.
func threadCount(v field.Value) (int64, bool) {
	n, ok := field.Resolved(v)
	if !ok {
		return 0, false
	}

	n = math.Trunc(n)
	if n < 1 || n >= math.MaxInt64 {
		return 0, false
	}

	return int64(n), true
}

func pairValue(p field.Pair) []any {
	return []any{number(p.Start), number(p.End)}
}

// number emits whole values as integers so they render without a fraction.
func number(n float64) any {
	if n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64 {
		return int64(n)
	}

	return n
}
