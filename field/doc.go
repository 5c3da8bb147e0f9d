// Package field interprets raw numeric form values and validates them.
//
// A raw Value is unset, a literal number or free text. Interpret resolves it
// to exactly one of empty, invalid or valid(number):
//
//	field.Interpret(field.Text(" 42 "))  // valid(42)
//	field.Interpret(field.Text(""))      // empty
//	field.Interpret(field.Text("abc"))   // invalid
//
// Rule and RangeRule layer bounds, integrality and requiredness on top of
// interpretation and report every Violation they find instead of stopping at
// the first one:
//
//	rule := field.Rule{Label: "Min probability", Min: field.Limit(0), Max: field.Limit(100), Integer: true, Required: true}
//	_, _, violations := rule.Check(field.Number(101))
//	// violations[0].Message == "Min probability must not be greater than 100"
package field
