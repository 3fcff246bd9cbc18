package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcheck/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewYAMLParser()

	t.Run("parses nested templates", func(t *testing.T) {
		content := `
en:
  validation:
    not_null: "Value is mandatory"
fr:
  validation:
    not_null: "Valeur obligatoire"
`
		result, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)
		require.Contains(t, result, "en")
		require.Contains(t, result, "fr")

		validation, ok := result["en"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Value is mandatory", validation["not_null"])
	})

	t.Run("rejects scalar language entry", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), "en: hello\n")
		require.ErrorIs(t, err, i18n.ErrInvalidYAMLStructure)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), "en: [unclosed")
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, "en: {a: b}")
		require.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})

	t.Run("supports extensions", func(t *testing.T) {
		assert.True(t, parser.SupportsFileExtension("yaml"))
		assert.True(t, parser.SupportsFileExtension(".yml"))
		assert.True(t, parser.SupportsFileExtension("YAML"))
		assert.False(t, parser.SupportsFileExtension("json"))
	})
}

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewJSONParser()

	t.Run("parses templates and skips non objects", func(t *testing.T) {
		result, err := parser.Parse(context.Background(), `{"en":{"a":"b"},"version":1}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]map[string]any{"en": {"a": "b"}}, result)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), `{"en":`)
		require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("supports extensions", func(t *testing.T) {
		assert.True(t, parser.SupportsFileExtension(".json"))
		assert.False(t, parser.SupportsFileExtension("yaml"))
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("messages.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("messages.yml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/messages.YAML"))
	assert.Nil(t, i18n.NewParserForFile("messages.txt"))
	assert.Nil(t, i18n.NewParserForFile("messages"))
}
