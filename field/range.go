package field

// Range is a raw (start, end) pair of numeric values.
type Range struct {
	Start Value `yaml:"start"`
	End   Value `yaml:"end"`
}

// NewRange builds a Range from two literal numbers.
func NewRange(start, end float64) Range {
	return Range{Start: Number(start), End: Number(end)}
}

// Pair is a normalized range with both ends resolved.
type Pair struct {
	Start float64
	End   float64
}

// RangeRule describes how a Range is validated. Partial fills are rejected
// whether or not the range is required.
type RangeRule struct {
	Label    string
	Min      Bound
	Integer  bool
	Required bool
}

// Check validates r and returns the normalized pair when both ends resolve.
func (rr RangeRule) Check(r Range) (Pair, bool, []Violation) {
	start := Interpret(r.Start)
	end := Interpret(r.End)

	if start.Kind == KindEmpty && end.Kind == KindEmpty {
		if !rr.Required {
			return Pair{}, false, nil
		}

		_, _, startViolations := rr.endRule("minimum").Check(r.Start)
		_, _, endViolations := rr.endRule("maximum").Check(r.End)

		return Pair{}, false, append(startViolations, endViolations...)
	}

	if start.Kind == KindInvalid || end.Kind == KindInvalid {
		var violations []Violation

		if start.Kind == KindInvalid {
			_, _, v := rr.endRule("minimum").Check(r.Start)
			violations = append(violations, v...)
		}

		if end.Kind == KindInvalid {
			_, _, v := rr.endRule("maximum").Check(r.End)
			violations = append(violations, v...)
		}

		return Pair{}, false, violations
	}

	if start.Kind == KindEmpty || end.Kind == KindEmpty {
		return Pair{}, false, []Violation{{
			Code:    CodeRangePartiallyFilled,
			Message: rr.Label + " requires both minimum and maximum to be filled",
		}}
	}

	startNum, _, violations := rr.endRule("minimum").Check(r.Start)
	endNum, _, endViolations := rr.endRule("maximum").Check(r.End)
	violations = append(violations, endViolations...)

	if start.Number > end.Number {
		violations = append(violations, Violation{
			Code:    CodeRangeOrderViolation,
			Message: rr.Label + " minimum must not exceed maximum",
		})
	}

	if len(violations) > 0 {
		return Pair{}, false, violations
	}

	return Pair{Start: startNum, End: endNum}, true, nil
}

func (rr RangeRule) endRule(side string) Rule {
	return Rule{
		Label:    rr.Label + " " + side,
		Min:      rr.Min,
		Max:      Unbounded(),
		Integer:  rr.Integer,
		Required: true,
	}
}

// Resolve interprets both ends of r without applying any rule. It reports
// whether both ends are concrete numbers.
func Resolve(r Range) (Pair, bool) {
	start := Interpret(r.Start)
	end := Interpret(r.End)

	if start.Kind != KindValid || end.Kind != KindValid {
		return Pair{}, false
	}

	return Pair{Start: start.Number, End: end.Number}, true
}
