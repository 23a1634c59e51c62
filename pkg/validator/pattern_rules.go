package validator

import "regexp"

// Matches passes strings matched by pattern and fails with message otherwise.
// It panics if pattern does not compile.
func Matches(pattern, message string) Rule {
	return MatchesRegexp(regexp.MustCompile(pattern), message)
}

// MatchesRegexp is Matches for an already compiled expression.
func MatchesRegexp(re *regexp.Regexp, message string) Rule {
	if re == nil {
		panic("validator: MatchesRegexp with nil regexp")
	}
	return func(value any, path string) (any, error) {
		value, err := String(value, path)
		if err != nil {
			return nil, err
		}
		if s, _ := stringValue(value); !re.MatchString(s) {
			return fail(path, message)
		}
		return value, nil
	}
}

// ValidateIf passes values for which condition returns true.
func ValidateIf(condition func(value any) bool) Rule {
	if condition == nil {
		panic("validator: ValidateIf with nil condition")
	}
	return func(value any, path string) (any, error) {
		value = indirect(value)
		if !condition(value) {
			return fail(path, "condition not satisfied")
		}
		return value, nil
	}
}
