package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyHeader     = errors.New("csv header is empty")
	ErrDuplicateColumn = errors.New("csv header has a duplicate column")
	ErrReadCSV         = errors.New("failed to read csv")
)

type csvConfig struct {
	comma     rune
	nullValue *string
	trim      bool
}

// CSVOption configures ReadCSV.
type CSVOption func(*csvConfig)

// WithComma sets the field delimiter. Default ','.
func WithComma(r rune) CSVOption {
	return func(c *csvConfig) { c.comma = r }
}

// WithNullValue makes cells equal to marker read as null, e.g. "" or "NULL".
// Without it only columns missing from a short row are null.
func WithNullValue(marker string) CSVOption {
	return func(c *csvConfig) { c.nullValue = &marker }
}

// WithTrimSpace trims surrounding whitespace from header names and cells.
func WithTrimSpace() CSVOption {
	return func(c *csvConfig) { c.trim = true }
}

// ReadCSV reads a header row followed by data rows into Maps keyed by column
// name. Rows may be shorter or longer than the header; extra cells are
// dropped.
func ReadCSV(r io.Reader, opts ...CSVOption) ([]Map, error) {
	cfg := csvConfig{comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.comma
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyHeader
	}
	if err != nil {
		return nil, errors.Join(ErrReadCSV, err)
	}

	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if cfg.trim {
			name = strings.TrimSpace(name)
			header[i] = name
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = true
	}

	var rows []Map
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrReadCSV, err)
		}

		row := make(Map, len(header))
		for i, name := range header {
			if i >= len(cells) {
				break
			}
			cell := cells[i]
			if cfg.trim {
				cell = strings.TrimSpace(cell)
			}
			if cfg.nullValue != nil && cell == *cfg.nullValue {
				continue
			}
			row[name] = cell
		}
		rows = append(rows, row)
	}
	return rows, nil
}
