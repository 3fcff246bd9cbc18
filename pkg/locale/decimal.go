package locale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// sample has both a grouped integer part and a fraction, so its formatted form
// reveals the group separator first and the decimal separator last.
const sample = 1234567.5

// DecimalFormat describes how a locale writes decimal numbers.
type DecimalFormat struct {
	Tag     language.Tag
	Decimal rune
	Group   rune
	// Minus is the locale's negative sign. ASCII '-' is accepted as well.
	Minus rune
}

// Invariant is the culture-neutral format: "." for fractions, "," for groups.
var Invariant = DecimalFormat{Tag: language.Und, Decimal: '.', Group: ',', Minus: '-'}

// DecimalFormatFor returns the decimal format used by tag.
// Falls back to Invariant separators when x/text cannot localize the sample.
func DecimalFormatFor(tag language.Tag) DecimalFormat {
	p := message.NewPrinter(tag)
	opts := []number.Option{number.MinFractionDigits(1), number.MaxFractionDigits(1)}

	f := DecimalFormat{Tag: tag, Decimal: Invariant.Decimal, Group: Invariant.Group, Minus: Invariant.Minus}
	if sign := leadingSymbols(p.Sprint(number.Decimal(-sample, opts...))); len(sign) > 0 {
		f.Minus = sign[len(sign)-1]
	}

	seps := symbols(p.Sprint(number.Decimal(sample, opts...)))
	if len(seps) == 0 {
		return f
	}

	f.Decimal = seps[len(seps)-1]
	if len(seps) > 1 && seps[0] != f.Decimal {
		f.Group = seps[0]
	} else {
		f.Group = 0
	}
	return f
}

// symbols returns the runes of s that are neither digits nor invisible
// formatting marks such as U+200E or U+061C.
func symbols(s string) []rune {
	var out []rune
	for _, r := range s {
		if unicode.IsDigit(r) || unicode.Is(unicode.Cf, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// leadingSymbols is symbols restricted to the part of s before the first digit.
func leadingSymbols(s string) []rune {
	if i := strings.IndexFunc(s, unicode.IsDigit); i >= 0 {
		s = s[:i]
	}
	return symbols(s)
}

// Parse parses s as a decimal number written in f.
// Accepted shape: [sign]digits[sep digits], with at least one digit overall
// ("5", "-1,5", ".5" and "5." are valid for the matching separator).
// The sign is '+', '-' or f.Minus. Digits may come from any Unicode decimal
// digit set ("١٢٫٥" is 12.5 under Arabic), and invisible bidi marks such as
// U+200E, U+200F and U+061C are ignored.
func (f DecimalFormat) Parse(s string) (float64, error) {
	canonical, ok := f.canonical(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}

	v, err := strconv.ParseFloat(canonical, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.Join(ErrDecimalOutOfRange, err)
		}
		return 0, errors.Join(ErrInvalidDecimal, err)
	}
	return v, nil
}

// Valid reports whether s parses under f.
func (f DecimalFormat) Valid(s string) bool {
	_, err := f.Parse(s)
	return err == nil
}

// canonical rewrites s into strconv syntax, rejecting anything outside the accepted shape.
func (f DecimalFormat) canonical(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(s))

	digits := 0
	seenSign := false
	seenSep := false
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Cf, r):
			continue
		case unicode.IsDigit(r):
			digits++
			b.WriteByte(byte('0' + digitValue(r)))
		case r == '+' && b.Len() == 0 && !seenSign:
			seenSign = true
		case (r == '-' || (f.Minus != 0 && r == f.Minus)) && b.Len() == 0 && !seenSign:
			seenSign = true
			b.WriteByte('-')
		case r == f.Decimal && !seenSep:
			seenSep = true
			b.WriteByte('.')
		default:
			return "", false
		}
	}

	if digits == 0 {
		return "", false
	}
	return b.String(), true
}

// digitValue returns the numeric value of a Unicode decimal digit.
// Decimal digits are encoded in contiguous runs that start at zero,
// so the value is the offset from the start of the run modulo 10.
func digitValue(r rune) int {
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}
