package main

import (
	"strings"

	"github.com/dmitrymomot/strcheck/pkg/record"
	"github.com/dmitrymomot/strcheck/pkg/validator"
)

type field = validator.FieldValidator[record.Map]

// Columns of a price list export.
const (
	colKey     = "Key"
	colDate    = "DateTimeValue"
	colDecimal = "DecimalValue"
	colStatus  = "Status"
	colCode    = "Code"
)

const (
	dateLayout  = "20060102"
	keyPattern  = `^[A-Z0-9_-]+$`
	maxKeyRunes = 12
)

var statuses = []string{"active", "retired", "draft"}

func present(col string) func(record.Map) bool {
	return func(r record.Map) bool { return r.Get(col) != nil }
}

// active rows must carry a price.
func active(r record.Map) bool {
	s := r.Get(colStatus)
	return s != nil && strings.EqualFold(*s, "active")
}

func priceListValidator(opts ...validator.Option) *validator.RecordValidator[record.Map] {
	return validator.Init[record.Map](opts...).
		For(record.Key[record.Map](colKey), func(f *field) {
			f.IsNotNullOrEmpty().
				HasLengthWithin(1, maxKeyRunes).
				MatchesPattern(keyPattern, validator.IgnoreCase)
		}).
		For(record.Key[record.Map](colDate), func(f *field) {
			f.IsNotNull().TryParseDateTime(dateLayout)
		}).
		For(record.Key[record.Map](colDecimal), func(f *field) {
			f.If(active, func(f *field) { f.IsNotNull() }).
				If(present(colDecimal), func(f *field) { f.TryParseDecimal() })
		}).
		For(record.Key[record.Map](colStatus), func(f *field) {
			f.IsNotNull().IsMemberOf(statuses, validator.CaseInsensitive)
		}).
		ForIf(record.Key[record.Map](colCode), present(colCode), func(f *field) {
			f.IsUUID()
		})
}
