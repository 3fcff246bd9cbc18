package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/strcheck/pkg/logger"
	"github.com/dmitrymomot/strcheck/pkg/record"
	"github.com/dmitrymomot/strcheck/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

type runIDKey struct{}

var errInterrupted = errors.New("interrupted")

func run(ctx context.Context, args []string, environ map[string]string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}

	code := exitOK
	cmd := newRootCmd(environ, &code)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "rowcheck: %v\n", err)
		return exitError
	}
	return code
}

func execute(ctx context.Context, s appSettings, path string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logger.New(
		logger.WithEnvironment(s.env, "rowcheck"),
		logger.WithLevelName(s.LogLevel),
		logger.WithOutput(stderr),
		logger.WithContextValue("run_id", runIDKey{}),
	)

	runID := uuid.NewString()
	ctx = context.WithValue(ctx, runIDKey{}, runID)

	rep, err := check(ctx, log, s, path, stdin)
	if err != nil {
		log.ErrorContext(ctx, "validation aborted", logger.File(path), logger.Error(err))
		return exitError
	}
	rep.RunID = runID

	if err := rep.write(stdout, s.Format); err != nil {
		log.ErrorContext(ctx, "failed to write report", logger.Error(err))
		return exitError
	}
	if !rep.Valid {
		return exitInvalid
	}
	return exitOK
}

func check(ctx context.Context, log *slog.Logger, s appSettings, path string, stdin io.Reader) (report, error) {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return report{}, err
		}
		defer f.Close()
		in = f
	}

	start := time.Now()
	rows, err := record.ReadCSV(in,
		record.WithComma(s.comma()),
		record.WithNullValue(s.NullValue),
		record.WithTrimSpace(),
	)
	if err != nil {
		return report{}, err
	}

	v := priceListValidator(
		validator.WithOptions(s.validation),
		validator.WithLogger(log),
	)
	v.ValidateSeq(untilDone(ctx, rows))
	if err := ctx.Err(); err != nil {
		return report{}, errors.Join(errInterrupted, err)
	}

	errs := v.ValidationErrors()
	log.InfoContext(ctx, "file validated",
		logger.File(path),
		logger.Records(len(rows)),
		logger.Failures(len(errs)),
		logger.Duration(time.Since(start)),
	)

	return report{
		Records: len(rows),
		Valid:   v.IsValid(),
		Errors:  errs,
	}, nil
}

// untilDone yields rows until ctx is cancelled.
func untilDone[T any](ctx context.Context, rows []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range rows {
			if ctx.Err() != nil || !yield(r) {
				return
			}
		}
	}
}
