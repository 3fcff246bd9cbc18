// Command rowcheck validates a CSV price list and prints every rule failure.
//
// Usage:
//
//	rowcheck [flags] [file.csv]
//
// The file is read from stdin when no argument or "-" is given. The report
// goes to stdout and logs to stderr. Exit status is 0 when every row is
// valid, 1 when some row failed and 2 on input or configuration errors.
//
// Flags override the matching environment variables:
//
//	ROWCHECK_FORMAT                --format   text (default) or json
//	ROWCHECK_LOG_LEVEL                        debug, info (default), warn, error
//	ROWCHECK_COMMA                 --comma    field delimiter, default ","
//	ROWCHECK_NULL_VALUE            --null     cell text read as null, default empty
//	APP_ENV                                   development, staging or production
//	VALIDATION_SHOW_ROW_INDEX                 prefix messages with "Row N", default true
//	VALIDATION_ROW_INDEX_STARTS_AT --start    number of the first data row, default 1
//	VALIDATION_LANGUAGE            --lang     message language, negotiated from LANG when unset
//	VALIDATION_LOCALE              --locale   number format for decimals, default en
//
// A .env file in the working directory is loaded first when present.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/dmitrymomot/strcheck/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	if _, err := os.Stat(".env"); err == nil {
		_ = config.LoadEnv()
	}

	code := run(ctx, os.Args[1:], environ(), os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func environ() map[string]string {
	vars := os.Environ()
	m := make(map[string]string, len(vars))
	for _, kv := range vars {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
