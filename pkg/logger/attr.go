package logger

import (
	"log/slog"
	"strconv"
	"time"
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

// RunID records the identifier of one validation run under "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// File records the input path under "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// Row records a row number under "row".
func Row(index int) slog.Attr {
	return slog.Int("row", index)
}

// Field records a record field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Records records how many records were processed under "records".
func Records(n int) slog.Attr {
	return slog.Int("records", n)
}

// Failures records how many validation errors were reported under "failures".
func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
