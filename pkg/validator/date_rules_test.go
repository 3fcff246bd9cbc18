package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcheck/pkg/validator"
)

func dateField() *validator.FieldValidator[Row] {
	return validator.For(validator.Member[Row]("DateTimeValue"))
}

func TestTryParseDateTime(t *testing.T) {
	t.Parallel()

	t.Run("accepts exact layout", func(t *testing.T) {
		fv := dateField().TryParseDateTime("20060102")
		assert.True(t, fv.Validate(Row{DateTimeValue: ptr("20181201")}).IsValid())
	})

	t.Run("rejects invalid date", func(t *testing.T) {
		fv := dateField().TryParseDateTime("20060102").Validate(Row{DateTimeValue: ptr("20181301")})
		require.False(t, fv.IsValid())
		assert.Equal(t, "Field DateTimeValue: '20181301' is not a valid date, expected format 20060102",
			fv.ValidationErrors()[0].ErrorMessage())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		fv := dateField().TryParseDateTime("2006-01-02")
		for _, v := range []string{"2018/12/01", "20181201", "2018-12-01T00:00:00", "2018-12-1"} {
			assert.False(t, fv.Validate(Row{DateTimeValue: ptr(v)}).IsValid(), "value %q", v)
		}
	})

	t.Run("rejects fractional seconds missing from the layout", func(t *testing.T) {
		fv := dateField().TryParseDateTime("2006-01-02 15:04:05")
		assert.True(t, fv.Validate(Row{DateTimeValue: ptr("2018-12-01 10:20:30")}).IsValid())
		assert.False(t, fv.Validate(Row{DateTimeValue: ptr("2018-12-01 10:20:30.5")}).IsValid())
	})

	t.Run("rejects values parsed but formatted differently", func(t *testing.T) {
		rfc := dateField().TryParseDateTime(time.RFC3339)
		assert.True(t, rfc.Validate(Row{DateTimeValue: ptr("2024-01-01T00:00:00Z")}).IsValid())
		assert.True(t, rfc.Validate(Row{DateTimeValue: ptr("2024-01-01T00:00:00+02:00")}).IsValid())
		assert.False(t, rfc.Validate(Row{DateTimeValue: ptr("2024-01-01T00:00:00+00:00")}).IsValid())

		short := dateField().TryParseDateTime("1/2/2006")
		assert.True(t, short.Validate(Row{DateTimeValue: ptr("1/2/2006")}).IsValid())
		assert.True(t, short.Validate(Row{DateTimeValue: ptr("12/25/2024")}).IsValid())
		assert.False(t, short.Validate(Row{DateTimeValue: ptr("01/02/2006")}).IsValid())
	})

	t.Run("month names ignore case", func(t *testing.T) {
		fv := dateField().TryParseDateTime("02 Jan 2006")
		assert.True(t, fv.Validate(Row{DateTimeValue: ptr("01 dec 2018")}).IsValid())
	})

	t.Run("null fails", func(t *testing.T) {
		assert.False(t, dateField().TryParseDateTime("20060102").Validate(Row{}).IsValid())
	})

	t.Run("formatted dates round trip", func(t *testing.T) {
		layouts := []string{"20060102", time.RFC3339, "02/01/2006 15:04", time.Kitchen}
		moments := []time.Time{
			time.Date(2018, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC),
			time.Date(1999, 7, 4, 9, 5, 0, 0, time.FixedZone("X", 2*3600)),
		}
		for _, layout := range layouts {
			fv := dateField().TryParseDateTime(layout)
			for _, m := range moments {
				s := m.Format(layout)
				assert.True(t, fv.Validate(Row{DateTimeValue: &s}).IsValid(), "layout %q value %q", layout, s)
			}
		}
	})

	t.Run("empty layout panics", func(t *testing.T) {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, validator.ErrEmptyDateFormat)
		}()
		dateField().TryParseDateTime("")
	})
}
