package validator

import (
	"fmt"
	"regexp"
)

// PatternFlag alters how MatchesPattern interprets its expression.
type PatternFlag uint8

const (
	// IgnoreCase makes the match case-insensitive (RE2 "i").
	IgnoreCase PatternFlag = 1 << iota
	// Multiline lets ^ and $ match at line boundaries (RE2 "m").
	Multiline
	// DotAll lets . match newlines (RE2 "s").
	DotAll
)

// MatchesPattern fails unless the value matches pattern somewhere; anchor
// the expression to require a full match. The expression is compiled once.
// A null value never matches. Panics with ErrInvalidPattern on a bad
// expression.
func (fv *FieldValidator[R]) MatchesPattern(pattern string, flags ...PatternFlag) *FieldValidator[R] {
	re, err := regexp.Compile(withFlags(pattern, flags))
	if err != nil {
		panic(fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err))
	}

	return fv.AddRule(&Rule[R]{
		Kind: KeyPattern,
		IsValid: func(rec R) bool {
			v := fv.value(rec)
			return v != nil && re.MatchString(*v)
		},
		DefaultMessage: fv.valueMessage(KeyPattern, "pattern", pattern),
	})
}

func withFlags(pattern string, flags []PatternFlag) string {
	var set PatternFlag
	for _, f := range flags {
		set |= f
	}
	if set == 0 {
		return pattern
	}

	prefix := "(?"
	if set&IgnoreCase != 0 {
		prefix += "i"
	}
	if set&Multiline != 0 {
		prefix += "m"
	}
	if set&DotAll != 0 {
		prefix += "s"
	}
	return prefix + ")" + pattern
}
