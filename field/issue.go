package field

// Code classifies a validation failure.
type Code string

const (
	// CodeFieldEmpty is reported when a required field has no value.
	CodeFieldEmpty Code = "field_empty"
	// CodeFieldInvalid is reported when a field holds text that is not a finite number.
	CodeFieldInvalid Code = "field_invalid"
	// CodeFieldOutOfBounds is reported when a number falls outside its inclusive bounds.
	CodeFieldOutOfBounds Code = "field_out_of_bounds"
	// CodeFieldNotInteger is reported when an integer field holds a fractional number.
	CodeFieldNotInteger Code = "field_not_integer"
	// CodeRangePartiallyFilled is reported when only one end of a range is filled.
	CodeRangePartiallyFilled Code = "range_partially_filled"
	// CodeRangeOrderViolation is reported when a range minimum exceeds its maximum.
	CodeRangeOrderViolation Code = "range_order_violation"
	// CodeIdentifierMissing is reported when a group has a blank identifier.
	CodeIdentifierMissing Code = "identifier_missing"
	// CodeURLSchemeInvalid is reported when the connection URL has the wrong scheme.
	CodeURLSchemeInvalid Code = "url_scheme_invalid"
	// CodeEnumUnknown is reported when a choice field holds a value outside its set.
	CodeEnumUnknown Code = "enum_unknown"
)

// Violation is a single field-local validation failure.
type Violation struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (v Violation) Error() string {
	return v.Message
}
