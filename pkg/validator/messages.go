package validator

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/dmitrymomot/strcheck/pkg/i18n"
)

// Message keys, one per rule kind, plus the two header fragments.
const (
	KeyHeaderRow      = "validation.header.row"
	KeyHeaderField    = "validation.header.field"
	KeyNotNull        = "validation.not_null"
	KeyNotNullOrEmpty = "validation.not_null_or_empty"
	KeyLength         = "validation.length"
	KeyDecimal        = "validation.decimal"
	KeyDateTime       = "validation.datetime"
	KeyMemberOf       = "validation.member_of"
	KeyNotMemberOf    = "validation.not_member_of"
	KeyPattern        = "validation.pattern"
	KeyUUID           = "validation.uuid"
	KeyCondition      = "validation.condition"
)

// MessageProvider renders the template stored under key for lang.
// args are placeholder name/value pairs. *i18n.Translator implements it.
type MessageProvider interface {
	T(lang, key string, args ...string) string
}

//go:embed translations/*.yaml
var translationsFS embed.FS

var (
	defaultMessagesOnce sync.Once
	defaultMessages     *i18n.Translator
)

// DefaultMessages returns the built-in English and French templates.
func DefaultMessages() *i18n.Translator {
	defaultMessagesOnce.Do(func() {
		t, err := NewMessages(context.Background())
		if err != nil {
			panic(fmt.Errorf("validator: load built-in messages: %w", err))
		}
		defaultMessages = t
	})
	return defaultMessages
}

// NewMessages builds a translator over the built-in templates. Pass i18n
// options to change the default language or attach a logger.
func NewMessages(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), translationsFS, "translations")
	return i18n.NewTranslator(ctx, adapter, opts...)
}
