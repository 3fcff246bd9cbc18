package validator

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/strcheck/pkg/locale"
)

// TryParseDecimal fails unless the value is a decimal number in the number
// format of tag: optional sign, digits and an optional fraction after the
// locale's decimal separator. Group separators are not accepted. Without a
// tag the validator's locale (WithLocale, default English) is used. A null
// value fails.
func (fv *FieldValidator[R]) TryParseDecimal(tag ...language.Tag) *FieldValidator[R] {
	t := fv.cfg.locale
	if len(tag) > 0 {
		t = tag[0]
	}
	format := locale.DecimalFormatFor(t)

	return fv.AddRule(&Rule[R]{
		Kind: KeyDecimal,
		IsValid: func(rec R) bool {
			v := fv.value(rec)
			return v != nil && format.Valid(*v)
		},
		DefaultMessage: fv.valueMessage(KeyDecimal),
	})
}
