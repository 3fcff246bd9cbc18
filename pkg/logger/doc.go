// Package logger builds slog loggers for the command line tools and provides
// attribute helpers so keys stay consistent across packages.
//
// New returns a *slog.Logger configured with functional options: output
// format (text or json), level, static attributes and ContextExtractor
// callbacks that copy values such as a run id from the context of each call.
// WithEnvironment picks defaults for development, staging and production.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(os.Getenv("APP_ENV")), "rowcheck"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "file validated",
//	    logger.File(path),
//	    logger.Records(n),
//	    logger.Error(err),
//	)
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so callers need no nil check.
package logger
