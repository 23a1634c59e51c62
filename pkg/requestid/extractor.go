package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/fieldrules/pkg/logger"
)

// LoggerExtractor adds the request ID to records logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
