package ruleset

import "errors"

var (
	// ErrInvalidFile is returned when a ruleset file cannot be read or parsed.
	ErrInvalidFile = errors.New("invalid ruleset file")

	// ErrInvalidRule is returned for unknown rule names and bad rule parameters.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrUnknownRuleset is returned when a ruleset name is not defined.
	ErrUnknownRuleset = errors.New("unknown ruleset")

	// ErrInvalidDocument is returned when a document cannot be decoded into a key-value object.
	ErrInvalidDocument = errors.New("invalid document")
)
