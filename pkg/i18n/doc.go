// Package i18n stores localized message templates and renders them with named
// placeholders. The validator package uses it as its message provider: every
// rule kind maps to a dotted key such as "validation.not_null" and the
// Translator renders the template for the requested language.
//
// Templates are loaded once through a TranslationAdapter. Adapters for an
// in-memory map, a single file, a directory and an embed.FS are included; the
// file based adapters delegate decoding to a Parser (YAML or JSON).
//
// # Usage
//
//	adapter := i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), translations, "translations")
//	translator, err := i18n.NewTranslator(ctx, adapter,
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//
//	msg := translator.T("fr", "validation.length", "min", "5", "max", "10")
//
// Placeholders use the `%{name}` form. Unknown placeholders are left as-is so a
// missing argument is visible in the rendered text.
//
// # Fallbacks
//
// A language without templates falls back to the default language. A key
// missing from both falls back to the key itself (disable with
// WithFallbackToKey(false) to get an empty string instead).
//
// # Error Handling
//
// Loading errors wrap the package sentinels with errors.Join, so callers can
// use errors.Is to tell a missing file from a malformed one.
package i18n
