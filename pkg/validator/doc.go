// Package validator provides the rule catalog used by field schemas: small,
// pure functions that check a single value and either return it or fail with
// a path-prefixed ValidationError.
//
// A Rule has the shape
//
//	func(value any, path string) (any, error)
//
// Plain rules (String, Number, Email, ...) are package-level functions that
// already satisfy Rule. Parameterized rules (Length, Min, In, Matches, ...) are
// factories that close over their configuration and return a Rule. Rules that
// need a precondition delegate to the rule that owns it, so Positive applied to
// a string fails with Number's "expected a number" rather than its own message.
//
// # Architecture
//
// Each source file groups a family of rules (`type_rules.go`,
// `numeric_rules.go`, `string_rules.go`, `format_rules.go`, etc.). There is no
// hidden global state; every rule is goroutine-safe.
//
// Values are inspected by kind, not by static type, so named types work as
// expected:
//
//	type Role string
//	validator.Check(validator.String, Role("admin")) // passes
//
// Non-nil pointers are dereferenced before a rule looks at them, and a nil
// pointer, map, slice, channel or func is treated as null.
//
// # Usage
//
//	if _, err := validator.Length(2, 4)(name, "name"); err != nil {
//	    fmt.Println(err) // name: length must be between 2 and 4
//	}
//
// # Error Handling
//
// Every failure is a *ValidationError whose Error() string is
// "{path}: {message}". ValidationError matches ErrValidationFailed with
// errors.Is, and AsValidationError extracts it from a wrapped chain.
package validator
