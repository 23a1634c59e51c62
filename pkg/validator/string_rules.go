package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotEmpty passes strings that are not blank after trimming whitespace,
// Unicode spaces and the byte order mark included.
func NotEmpty(value any, path string) (any, error) {
	value, err := String(value, path)
	if err != nil {
		return nil, err
	}
	if s, _ := stringValue(value); strings.TrimFunc(s, isBlank) == "" {
		return fail(path, "must not be empty")
	}
	return value, nil
}

// UpperCase passes strings equal to their full Unicode upper-case mapping,
// so "straße" is not upper case while "STRASSE" is.
func UpperCase(value any, path string) (any, error) {
	value, err := String(value, path)
	if err != nil {
		return nil, err
	}
	// Casers keep state; one per call.
	if s, _ := stringValue(value); cases.Upper(language.Und).String(s) != s {
		return fail(path, "must be uppercase")
	}
	return value, nil
}

func LowerCase(value any, path string) (any, error) {
	value, err := String(value, path)
	if err != nil {
		return nil, err
	}
	if s, _ := stringValue(value); cases.Lower(language.Und).String(s) != s {
		return fail(path, "must be lowercase")
	}
	return value, nil
}

// Length passes strings whose length in characters is within [min, max].
func Length(min, max int) Rule {
	message := fmt.Sprintf("length must be between %d and %d", min, max)
	return func(value any, path string) (any, error) {
		value, err := String(value, path)
		if err != nil {
			return nil, err
		}
		s, _ := stringValue(value)
		if n := utf8.RuneCountInString(s); n < min || n > max {
			return fail(path, message)
		}
		return value, nil
	}
}
