// Package logger builds log/slog loggers for the rulecheck tools and provides
// attribute helpers that keep key names consistent.
//
// New creates a *slog.Logger from a set of Option values:
//
//   - WithEnvironment picks format and level per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter override the format.
//   - WithLevel sets a minimum level; ParseLevel reads one from configuration.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context.
//
// The handler is wrapped in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks for every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "rulecheck"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.Info("document rejected",
//	    logger.Ruleset("user"),
//	    logger.Document("user.json"),
//	    logger.Violation(err),
//	)
//
// Error, Errors and Violation return an empty attribute for nil errors, so
// they can be passed without a nil check. NewNop returns a logger that drops
// every record and is used as the default where a logger is optional.
package logger
