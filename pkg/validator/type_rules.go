package validator

import (
	"math"
	"reflect"
	"time"
)

// String passes any value of string kind.
func String(value any, path string) (any, error) {
	value = indirect(value)
	if _, ok := stringValue(value); !ok {
		return fail(path, "expected a string")
	}
	return value, nil
}

// Number passes any integer or floating point kind except NaN.
func Number(value any, path string) (any, error) {
	value = indirect(value)
	f, ok := numberValue(value)
	if !ok || math.IsNaN(f) {
		return fail(path, "expected a number")
	}
	return value, nil
}

// Int passes integer kinds and finite floats without a fractional part.
func Int(value any, path string) (any, error) {
	value = indirect(value)
	f, ok := numberValue(value)
	if !ok {
		return fail(path, "expected an integer")
	}
	if !isIntegerKind(reflect.TypeOf(value).Kind()) {
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return fail(path, "expected an integer")
		}
	}
	return value, nil
}

func Boolean(value any, path string) (any, error) {
	value = indirect(value)
	if value == nil || reflect.TypeOf(value).Kind() != reflect.Bool {
		return fail(path, "expected a boolean")
	}
	return value, nil
}

// Array passes non-nil slices and arrays.
func Array(value any, path string) (any, error) {
	value = indirect(value)
	if value == nil {
		return fail(path, "expected an array")
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return value, nil
	default:
		return fail(path, "expected an array")
	}
}

// Object passes maps, structs, slices and arrays that are not null.
func Object(value any, path string) (any, error) {
	value = indirect(value)
	if value == nil {
		return fail(path, "expected an object")
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return value, nil
	default:
		return fail(path, "expected an object")
	}
}

func NotNull(value any, path string) (any, error) {
	value = indirect(value)
	if value == nil {
		return fail(path, "expected non-null")
	}
	return value, nil
}

// Date passes a non-zero time.Time. The zero time stands in for an invalid
// date since time.Time has no NaN state.
func Date(value any, path string) (any, error) {
	value = indirect(value)
	t, ok := value.(time.Time)
	if !ok || t.IsZero() {
		return fail(path, "expected a date")
	}
	return t, nil
}
