package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Violation records a validation failure as a "violation" group holding its
// path and message. Errors that are not validation errors fall back to Error.
func Violation(err error) slog.Attr {
	verr, ok := validator.AsValidationError(err)
	if !ok {
		return Error(err)
	}
	return Group("violation",
		slog.String("path", verr.Path),
		slog.String("message", verr.Message),
	)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Ruleset records the ruleset name under the key "ruleset".
func Ruleset(name string) slog.Attr {
	return slog.String("ruleset", name)
}

// Field records the field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records the rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Document records the document name (file path or "-") under the key "document".
func Document(name string) slog.Attr {
	return slog.String("document", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
