package validator

import (
	"fmt"
	"strings"
	"time"
)

// TryParseDateTime fails unless the value matches layout exactly. layout is
// a Go reference layout ("20060102" for yyyyMMdd). Exact means the value
// parses and formats back to the same text, ignoring letter case, so input
// the layout does not describe (such as extra fractional seconds) is
// rejected. A null value fails.
//
// The format-back check is stricter than time.Parse: values time.Parse
// accepts for layout but that format differently are rejected too. With
// time.RFC3339, "2024-01-01T00:00:00+00:00" fails because the UTC offset
// formats as "Z"; with "1/2/2006", the zero-padded "01/02/2006" fails.
//
// Panics with ErrEmptyDateFormat if layout is empty.
func (fv *FieldValidator[R]) TryParseDateTime(layout string) *FieldValidator[R] {
	if layout == "" {
		panic(fmt.Errorf("%w: field %q", ErrEmptyDateFormat, fv.name))
	}

	return fv.AddRule(&Rule[R]{
		Kind: KeyDateTime,
		IsValid: func(rec R) bool {
			v := fv.value(rec)
			return v != nil && parsesExactly(layout, *v)
		},
		DefaultMessage: fv.valueMessage(KeyDateTime, "format", layout),
	})
}

func parsesExactly(layout, value string) bool {
	t, err := time.Parse(layout, value)
	if err != nil {
		return false
	}
	return strings.EqualFold(t.Format(layout), value)
}
