// Package config loads application configuration from environment
// variables into Go structs.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `github.com/go-playground/validator/v10`:
//
//   - the default `.env` file is loaded once if present, more files can be
//     added with LoadEnv;
//   - env tags drive parsing, optionally under a prefix (WithPrefix);
//   - validate tags are checked after parsing, so a bad value stops startup;
//   - each type and prefix pair is parsed once and then served from a cache.
//
// # Usage
//
//	var opts validator.Options
//	if err := config.Load(&opts, config.WithPrefix("VALIDATION_")); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Tests can bypass the process environment and the cache with
// WithEnvironment, or clear the cache with ResetCache.
//
// # Error Handling
//
// Errors wrap one of ErrParsingConfig, ErrInvalidConfig, ErrConfigNotLoaded,
// ErrNilPointer or ErrLoadingEnvFile and can be matched with errors.Is.
package config
