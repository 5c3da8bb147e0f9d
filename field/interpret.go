package field

import (
	"math"
	"strconv"
)

// Kind classifies an interpreted Value.
type Kind int

const (
	// KindEmpty means the value is unset or blank text.
	KindEmpty Kind = iota
	// KindInvalid means the value is non-empty but not a finite number.
	KindInvalid
	// KindValid means the value resolved to a finite number.
	KindValid
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInvalid:
		return "invalid"
	case KindValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Interpretation is the result of Interpret. Number is meaningful only for KindValid.
type Interpretation struct {
	Kind   Kind
	Number float64
}

// Interpret resolves a raw Value to exactly one of empty, invalid or valid(number).
func Interpret(v Value) Interpretation {
	if v.isNumber {
		return finite(v.number)
	}

	text := trimmed(v.text)
	if text == "" {
		return Interpretation{Kind: KindEmpty, Number: 0}
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Interpretation{Kind: KindInvalid, Number: 0}
	}

	return finite(n)
}

func finite(n float64) Interpretation {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Interpretation{Kind: KindInvalid, Number: 0}
	}

	return Interpretation{Kind: KindValid, Number: n}
}

// Resolved returns the number behind v when it interprets as valid.
func Resolved(v Value) (float64, bool) {
	res := Interpret(v)

	return res.Number, res.Kind == KindValid
}
