package validator

import (
	"github.com/google/uuid"
)

// UUID passes strings in the canonical 8-4-4-4-12 hex form, in either case.
// uuid.UUID values always pass.
func UUID(value any, path string) (any, error) {
	if id, ok := indirect(value).(uuid.UUID); ok {
		return id, nil
	}

	value, err := String(value, path)
	if err != nil {
		return nil, err
	}
	s, _ := stringValue(value)

	// uuid.Parse also takes braced and urn forms; pin the canonical layout first
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return fail(path, "invalid UUID format")
	}
	if _, err := uuid.Parse(s); err != nil {
		return fail(path, "invalid UUID format")
	}
	return value, nil
}
