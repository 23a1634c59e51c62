package validator

import (
	"fmt"
	"reflect"
)

// MinItems passes arrays with at least min elements.
func MinItems(min int) Rule {
	message := fmt.Sprintf("expected at least %d items", min)
	return func(value any, path string) (any, error) {
		value, err := Array(value, path)
		if err != nil {
			return nil, err
		}
		if reflect.ValueOf(value).Len() < min {
			return fail(path, message)
		}
		return value, nil
	}
}

// MaxItems passes arrays with at most max elements.
func MaxItems(max int) Rule {
	message := fmt.Sprintf("expected at most %d items", max)
	return func(value any, path string) (any, error) {
		value, err := Array(value, path)
		if err != nil {
			return nil, err
		}
		if reflect.ValueOf(value).Len() > max {
			return fail(path, message)
		}
		return value, nil
	}
}
