package validator

import "errors"

// Configuration errors. Rule factories panic with an error wrapping one of
// these when they are misused, so a bad rule set fails at startup.
var (
	// ErrInvalidLengthRange is raised by HasLength when a bound is negative or max < min.
	ErrInvalidLengthRange = errors.New("invalid length range")

	// ErrEmptyDateFormat is raised by TryParseDateTime when the layout is empty.
	ErrEmptyDateFormat = errors.New("date format can't be empty")

	// ErrInvalidPattern is raised by MatchesPattern when the expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNoRule is raised when a message override is registered before any rule.
	ErrNoRule = errors.New("no rule to override")

	// ErrIncompleteRule is raised by AddRule for a rule without IsValid or DefaultMessage.
	ErrIncompleteRule = errors.New("rule requires IsValid and DefaultMessage")

	// ErrNilAccessor is raised when a field validator is built without a getter.
	ErrNilAccessor = errors.New("accessor is nil")

	// ErrUnknownMember is raised by Member when the record type has no such field.
	ErrUnknownMember = errors.New("unknown record member")

	// ErrUnsupportedMember is raised by Member when the field is not a string or *string.
	ErrUnsupportedMember = errors.New("record member must be string or *string")

	// ErrInvalidLocale is raised by WithOptions when Locale is not a BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")
)
