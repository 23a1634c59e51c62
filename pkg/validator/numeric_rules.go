package validator

import "fmt"

func Positive(value any, path string) (any, error) {
	value, err := Number(value, path)
	if err != nil {
		return nil, err
	}
	if f, _ := numberValue(value); f <= 0 {
		return fail(path, "expected a positive number")
	}
	return value, nil
}

func Negative(value any, path string) (any, error) {
	value, err := Number(value, path)
	if err != nil {
		return nil, err
	}
	if f, _ := numberValue(value); f >= 0 {
		return fail(path, "expected a negative number")
	}
	return value, nil
}

// Min passes numbers greater than or equal to min.
func Min[T Numeric](min T) Rule {
	message := fmt.Sprintf("value must be greater than %v", min)
	return func(value any, path string) (any, error) {
		value, err := Number(value, path)
		if err != nil {
			return nil, err
		}
		if lessNumber(value, min) {
			return fail(path, message)
		}
		return value, nil
	}
}

// Max passes numbers less than or equal to max.
func Max[T Numeric](max T) Rule {
	message := fmt.Sprintf("value must be less than %v", max)
	return func(value any, path string) (any, error) {
		value, err := Number(value, path)
		if err != nil {
			return nil, err
		}
		if lessNumber(max, value) {
			return fail(path, message)
		}
		return value, nil
	}
}
