package field

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnsupportedValue is returned when a decoded value is neither a number, a string nor null.
var ErrUnsupportedValue = errors.New("value must be a number, a string or null")

// Value is a raw numeric form value: unset, a literal number, or free text.
// The zero Value is unset.
type Value struct {
	text     string
	number   float64
	isNumber bool
}

// Number returns a Value holding a literal number.
func Number(n float64) Value {
	return Value{text: "", number: n, isNumber: true}
}

// Text returns a Value holding free text.
func Text(s string) Value {
	return Value{text: s, number: 0, isNumber: false}
}

// Empty returns an unset Value.
func Empty() Value {
	return Value{}
}

// String returns the value as it would be shown in a form input.
func (v Value) String() string {
	if v.isNumber {
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	}

	return v.text
}

// MarshalYAML keeps literal numbers as numbers and everything else as text.
func (v Value) MarshalYAML() (any, error) {
	if !v.isNumber {
		return v.text, nil
	}

	if whole, ok := wholeNumber(v.number); ok {
		return whole, nil
	}

	return v.number, nil
}

// UnmarshalYAML accepts null, any numeric scalar and strings.
func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	decoded, err := FromAny(raw)
	if err != nil {
		return err
	}

	*v = decoded

	return nil
}

// FromAny converts a decoded scalar into a Value.
func FromAny(raw any) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return Empty(), nil
	case string:
		return Text(typed), nil
	case float64:
		return Number(typed), nil
	case float32:
		return Number(float64(typed)), nil
	case int:
		return Number(float64(typed)), nil
	case int64:
		return Number(float64(typed)), nil
	case uint64:
		return Number(float64(typed)), nil
	default:
		return Value{}, fmt.Errorf("%w: got %T", ErrUnsupportedValue, raw)
	}
}

func wholeNumber(n float64) (int64, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return 0, false
	}

	if n < math.MinInt64 || n >= math.MaxInt64 {
		return 0, false
	}

	return int64(n), true
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
