package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strcheck/pkg/i18n"
)

func TestMatchLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "fr"}
	tests := []struct {
		name      string
		preferred string
		want      string
	}{
		{name: "exact", preferred: "fr", want: "fr"},
		{name: "regional variant", preferred: "fr-CH", want: "fr"},
		{name: "posix locale", preferred: "fr_FR.UTF-8", want: "fr"},
		{name: "accept language header", preferred: "de-DE, fr;q=0.8, en;q=0.5", want: "fr"},
		{name: "empty", preferred: "", want: "en"},
		{name: "posix C locale", preferred: "C", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.MatchLanguage(tt.preferred, supported, "en"))
		})
	}

	t.Run("no supported languages", func(t *testing.T) {
		assert.Equal(t, "en", i18n.MatchLanguage("fr", nil, "en"))
	})
}
