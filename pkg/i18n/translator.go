package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/strcheck/pkg/logger"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator renders message templates by language and dotted key.
// It is safe for concurrent use.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	adapter        TranslationAdapter
}

// NewTranslator loads templates through adapter and returns a ready Translator.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches the templates from the adapter again and swaps them in atomically.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := validateTranslations(translations); err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()

	t.logger.DebugContext(ctx, "message templates loaded", "languages", t.SupportedLanguages())
	return nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, templates := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if templates == nil {
			return fmt.Errorf("%w: nil templates for language %q", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted language codes that have templates.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// HasTranslation reports whether lang itself defines key. Default-language fallback is not considered.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := lookup(t.translations[lang], key)
	return ok
}

// Lookup returns the raw template for key, trying lang first and then the default language.
func (t *Translator) Lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := lookup(t.translations[lang], key); ok {
		return tmpl, true
	}
	if lang != t.defaultLang {
		if tmpl, ok := lookup(t.translations[t.defaultLang], key); ok {
			return tmpl, true
		}
	}
	return "", false
}

// T renders key for lang, substituting the key/value pairs in args into %{name} placeholders.
//
//	// "validation.length": "Length must be between %{min} and %{max}"
//	t.T("en", "validation.length", "min", "5", "max", "10")
//	// "Length must be between 5 and 10"
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.Lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("message template not found", "lang", lang, "key", key)
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return render(tmpl, args)
}

// Td works like T but renders defaultValue when key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.Lookup(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return render(tmpl, args)
}

// lookup walks m along the dot-separated segments of key. Only string leaves count.
func lookup(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return "", false
		}
	}
	return "", false
}

// render substitutes %{name} placeholders. args are key, value pairs; an odd trailing key is ignored.
func render(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
