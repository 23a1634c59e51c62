package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/fieldrules/pkg/httpserver"
	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/requestid"
)

// Config is read from the environment and an optional ./.env file.
type Config struct {
	Rules     string `env:"RULECHECK_RULES"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP httpserver.Config
}

// newLogger starts from the APP_ENV defaults; LOG_LEVEL and LOG_FORMAT
// override them when set.
func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "rulecheck"),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return logger.New(opts...), nil
}
