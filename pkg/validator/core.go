package validator

import (
	"math"
	"reflect"
	"unicode"
)

// DefaultPath is used when a rule is invoked with an empty path.
const DefaultPath = "value"

// Numeric is the constraint for numeric rule parameters.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule checks a single value. It returns the value, with pointers
// dereferenced, or a *ValidationError whose Path is path.
type Rule func(value any, path string) (any, error)

// Check runs rule against value using DefaultPath.
func Check(rule Rule, value any) (any, error) {
	return rule(value, DefaultPath)
}

// Chain composes rules into one. Each rule receives the value returned by the
// previous one and the first failure is returned unchanged.
func Chain(rules ...Rule) Rule {
	for _, r := range rules {
		if r == nil {
			panic("validator: Chain with nil rule")
		}
	}
	return func(value any, path string) (any, error) {
		var err error
		for _, r := range rules {
			if value, err = r(value, path); err != nil {
				return nil, err
			}
		}
		return value, nil
	}
}

func fail(path, message string) (any, error) {
	return nil, NewValidationError(path, message)
}

// indirect follows non-nil pointers and collapses nil-able kinds holding nil
// into an untyped nil.
func indirect(value any) any {
	for value != nil {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Pointer:
			if rv.IsNil() {
				return nil
			}
			value = rv.Elem().Interface()
		case reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
			if rv.IsNil() {
				return nil
			}
			return value
		default:
			return value
		}
	}
	return nil
}

// numberValue reports the float64 form of any numeric kind, NaN included.
func numberValue(value any) (float64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// lessNumber reports a < b for numeric kinds. Two integers compare exactly,
// mixed signedness included; a float operand makes it a float64 comparison.
func lessNumber(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if isIntegerKind(ra.Kind()) && isIntegerKind(rb.Kind()) {
		switch sa, sb := isSignedKind(ra.Kind()), isSignedKind(rb.Kind()); {
		case sa && sb:
			return ra.Int() < rb.Int()
		case !sa && !sb:
			return ra.Uint() < rb.Uint()
		case sa:
			return ra.Int() < 0 || uint64(ra.Int()) < rb.Uint()
		default:
			return rb.Int() >= 0 && ra.Uint() < uint64(rb.Int())
		}
	}
	fa, _ := numberValue(a)
	fb, _ := numberValue(b)
	return fa < fb
}

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// isBlank matches the characters trimmed as whitespace: Unicode spaces and
// line terminators plus the byte order mark, but not NEL.
func isBlank(r rune) bool {
	switch r {
	case '\ufeff':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

func stringValue(value any) (string, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// sameValue compares like SameValueZero: numbers by value (NaN equals NaN),
// string kinds by content, everything else by Go equality of identical types.
func sameValue(a, b any) bool {
	a, b = indirect(a), indirect(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if fa, ok := numberValue(a); ok {
		fb, ok := numberValue(b)
		if !ok {
			return false
		}
		return fa == fb || (math.IsNaN(fa) && math.IsNaN(fb))
	}

	if sa, ok := stringValue(a); ok {
		sb, ok := stringValue(b)
		return ok && sa == sb
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() || !ra.Comparable() || !rb.Comparable() {
		return false
	}
	return ra.Equal(rb)
}
