package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// In passes values equal to one of values. Numbers compare by value across
// numeric types and string kinds compare by content, so a named string
// constant matches the plain string it holds.
func In[T any](values ...T) Rule {
	allowed := make([]any, len(values))
	parts := make([]string, len(values))
	for i, v := range values {
		allowed[i] = v
		parts[i] = fmt.Sprint(v)
	}
	message := "value must be one of: " + strings.Join(parts, ", ")

	return func(value any, path string) (any, error) {
		for _, a := range allowed {
			if sameValue(value, a) {
				return indirect(value), nil
			}
		}
		return fail(path, message)
	}
}

// Enum passes values of the enumeration. Members are listed in key order since
// map iteration order is not stable.
//
//	validator.Enum(map[string]Role{"ADMIN": RoleAdmin, "USER": RoleUser})
func Enum[T any](enum map[string]T) Rule {
	values := make([]T, 0, len(enum))
	for _, k := range slices.Sorted(maps.Keys(enum)) {
		values = append(values, enum[k])
	}
	return In(values...)
}
