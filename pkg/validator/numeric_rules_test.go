package validator_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/strcheck/pkg/validator"
)

func decimalField(opts ...validator.Option) *validator.FieldValidator[Row] {
	return validator.For(validator.Member[Row]("DecimalValue"), opts...)
}

func TestTryParseDecimal(t *testing.T) {
	t.Parallel()

	t.Run("english default", func(t *testing.T) {
		fv := decimalField().TryParseDecimal()
		for _, v := range []string{"123", "123.45", "-0.5", "+7"} {
			assert.True(t, fv.Validate(Row{DecimalValue: ptr(v)}).IsValid(), "value %q", v)
		}
		for _, v := range []string{"", "zz", "1,234.5", "123,12", "1.2.3"} {
			assert.False(t, fv.Validate(Row{DecimalValue: ptr(v)}).IsValid(), "value %q", v)
		}
	})

	t.Run("explicit locale", func(t *testing.T) {
		fv := decimalField().TryParseDecimal(language.French)
		assert.True(t, fv.Validate(Row{DecimalValue: ptr("123,12")}).IsValid())
		assert.False(t, fv.Validate(Row{DecimalValue: ptr("123.12")}).IsValid())
	})

	t.Run("validator locale", func(t *testing.T) {
		fv := decimalField(validator.WithLocale(language.German)).TryParseDecimal()
		assert.True(t, fv.Validate(Row{DecimalValue: ptr("9,99")}).IsValid())
	})

	t.Run("null fails", func(t *testing.T) {
		assert.False(t, decimalField().TryParseDecimal().Validate(Row{}).IsValid())
	})

	t.Run("message carries value", func(t *testing.T) {
		fv := decimalField().TryParseDecimal().Validate(Row{DecimalValue: ptr("zz")})
		require.Len(t, fv.ValidationErrors(), 1)
		assert.Equal(t, "Field DecimalValue: 'zz' is not a valid decimal number", fv.ValidationErrors()[0].ErrorMessage())
	})

	t.Run("formatted decimals round trip", func(t *testing.T) {
		fv := decimalField().TryParseDecimal()
		for _, f := range []float64{0, 3.14159, -12.5, 1e6, 0.001} {
			s := strconv.FormatFloat(f, 'f', -1, 64)
			assert.True(t, fv.Validate(Row{DecimalValue: ptr(s)}).IsValid(), "value %q", s)
		}
	})

	t.Run("locale formatter output passes", func(t *testing.T) {
		for _, tag := range []language.Tag{language.Swedish, language.Finnish, language.Lithuanian, language.Arabic} {
			fv := decimalField().TryParseDecimal(tag)
			s := message.NewPrinter(tag).Sprint(number.Decimal(-12.5, number.NoSeparator()))
			assert.True(t, fv.Validate(Row{DecimalValue: &s}).IsValid(), "tag %s value %q", tag, s)
		}
	})
}
