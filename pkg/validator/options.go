package validator

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/strcheck/pkg/logger"
)

// Options controls row-index display and the message language. The env tags
// let it be loaded with pkg/config, typically under a "VALIDATION_" prefix.
type Options struct {
	ShowRowIndex     bool   `env:"SHOW_ROW_INDEX" envDefault:"false"`
	RowIndexStartsAt int    `env:"ROW_INDEX_STARTS_AT" envDefault:"1" validate:"gte=0"`
	Language         string `env:"LANGUAGE" envDefault:"en" validate:"required,bcp47_language_tag"`
	Locale           string `env:"LOCALE" envDefault:"en" validate:"required,bcp47_language_tag"`
}

// DefaultOptions returns the options used when Init gets none:
// no row index, numbering from 1, English messages and number format.
func DefaultOptions() Options {
	return Options{
		RowIndexStartsAt: 1,
		Language:         i18nDefaultLanguage,
		Locale:           DefaultLocale.String(),
	}
}

// DefaultLocale is the number format used by TryParseDecimal when neither
// WithLocale nor an explicit tag is given.
var DefaultLocale = language.English

const i18nDefaultLanguage = "en"

type settings struct {
	showRowIndex     bool
	rowIndexStartsAt int
	lang             string
	locale           language.Tag
	messages         MessageProvider
	logger           *slog.Logger
	fieldName        string
}

func newSettings(opts []Option) settings {
	s := settings{
		rowIndexStartsAt: 1,
		lang:             i18nDefaultLanguage,
		locale:           DefaultLocale,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.messages == nil {
		s.messages = DefaultMessages()
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	return s
}

// Option configures a RecordValidator or a FieldValidator. Row index options
// only matter to RecordValidator; WithFieldName only to FieldValidator.
type Option func(*settings)

// WithOptions applies every field of o. Panics with ErrInvalidLocale if
// o.Locale is not a valid BCP 47 tag.
func WithOptions(o Options) Option {
	return func(s *settings) {
		s.showRowIndex = o.ShowRowIndex
		s.rowIndexStartsAt = o.RowIndexStartsAt
		if o.Language != "" {
			s.lang = o.Language
		}
		if o.Locale != "" {
			tag, err := language.Parse(o.Locale)
			if err != nil {
				panic(fmt.Errorf("%w: %q: %w", ErrInvalidLocale, o.Locale, err))
			}
			s.locale = tag
		}
	}
}

// WithShowRowIndex prefixes messages with "Row N" during ValidateList.
func WithShowRowIndex(show bool) Option {
	return func(s *settings) { s.showRowIndex = show }
}

// WithRowIndexStartsAt sets the number given to the first record of a list. Default 1.
func WithRowIndexStartsAt(start int) Option {
	return func(s *settings) { s.rowIndexStartsAt = start }
}

// WithLanguage selects the message language, e.g. "fr".
func WithLanguage(lang string) Option {
	return func(s *settings) {
		if lang != "" {
			s.lang = lang
		}
	}
}

// WithLocale sets the default number format for TryParseDecimal.
func WithLocale(tag language.Tag) Option {
	return func(s *settings) { s.locale = tag }
}

// WithMessages replaces the built-in message templates.
func WithMessages(p MessageProvider) Option {
	return func(s *settings) {
		if p != nil {
			s.messages = p
		}
	}
}

// WithLogger sets the logger used for evaluation summaries at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFieldName overrides the name reported for a field validator.
func WithFieldName(name string) Option {
	return func(s *settings) { s.fieldName = name }
}
