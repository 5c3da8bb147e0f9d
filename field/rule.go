package field

import (
	"math"
	"strconv"
)

// Bound is an optional inclusive numeric limit.
type Bound struct {
	value float64
	set   bool
}

// Limit returns a Bound set to n.
func Limit(n float64) Bound {
	return Bound{value: n, set: true}
}

// Unbounded returns a Bound that never rejects.
func Unbounded() Bound {
	return Bound{}
}

// Rule describes how a single numeric field is validated.
type Rule struct {
	Label    string
	Min      Bound
	Max      Bound
	Integer  bool
	Required bool
}

// Check interprets v and reports every violation of the rule.
// The returned number is meaningful only when present is true.
func (r Rule) Check(v Value) (float64, bool, []Violation) {
	res := Interpret(v)

	if res.Kind == KindEmpty {
		if r.Required {
			return 0, false, []Violation{{
				Code:    CodeFieldEmpty,
				Message: r.Label + " must not be empty",
			}}
		}

		return 0, false, nil
	}

	if res.Kind == KindInvalid {
		return 0, false, []Violation{{
			Code:    CodeFieldInvalid,
			Message: r.Label + " must be a valid number",
		}}
	}

	violations := r.checkNumber(res.Number)
	if len(violations) > 0 {
		return 0, false, violations
	}

	return res.Number, true, nil
}

func (r Rule) checkNumber(n float64) []Violation {
	var violations []Violation

	if r.Min.set && n < r.Min.value {
		violations = append(violations, Violation{
			Code:    CodeFieldOutOfBounds,
			Message: r.Label + " must not be less than " + formatBound(r.Min.value),
		})
	}

	if r.Max.set && n > r.Max.value {
		violations = append(violations, Violation{
			Code:    CodeFieldOutOfBounds,
			Message: r.Label + " must not be greater than " + formatBound(r.Max.value),
		})
	}

	if r.Integer && n != math.Trunc(n) {
		violations = append(violations, Violation{
			Code:    CodeFieldNotInteger,
			Message: r.Label + " must be an integer",
		})
	}

	return violations
}

func formatBound(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
