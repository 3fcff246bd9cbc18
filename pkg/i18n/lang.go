package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// MatchLanguage picks the supported language closest to preferred, which may
// be an Accept-Language header ("fr-CH, fr;q=0.9, en;q=0.8"), a BCP 47 tag or
// a POSIX locale such as "fr_FR.UTF-8". Returns fallback when nothing matches.
func MatchLanguage(preferred string, supported []string, fallback string) string {
	if preferred == "" || len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return fallback
	}

	wanted, _, err := language.ParseAcceptLanguage(posixToBCP47(preferred))
	if err != nil || len(wanted) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence == language.No {
		return fallback
	}
	return supported[indexOfParsed(supported, idx)]
}

// posixToBCP47 turns "fr_FR.UTF-8@euro" into "fr-FR".
func posixToBCP47(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

// indexOfParsed maps an index into the parsed tag list back to supported, skipping unparsable entries.
func indexOfParsed(supported []string, idx int) int {
	n := 0
	for i, s := range supported {
		if _, err := language.Parse(s); err != nil {
			continue
		}
		if n == idx {
			return i
		}
		n++
	}
	return 0
}
