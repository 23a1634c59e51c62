// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//	    Rules    string `env:"RULECHECK_RULES"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The first Load reads ./.env when present. Additional files can be loaded
// explicitly with LoadEnv before calling Load; values already present in the
// process environment take precedence over files.
//
// Parsed values are cached per type for the lifetime of the process. Reset
// clears the cache, which tests use after changing the environment.
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
