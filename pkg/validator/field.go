package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldValidator is an ordered rule chain bound to one record field.
//
// Rules run in registration order and the first applicable failing rule
// stops the chain, so Validate reports at most one error per record. The
// validator keeps the row index and the last result as instance state and
// must not be shared between goroutines while validating.
type FieldValidator[R any] struct {
	name           string
	value          Getter[R]
	rules          []*Rule[R]
	rowIndex       *int
	extra          any
	preserveHeader bool
	errors         ValidationErrors
	cfg            settings
}

// For creates a field validator reading the field through acc.
// WithFieldName overrides acc.Name().
func For[R any](acc Accessor[R], opts ...Option) *FieldValidator[R] {
	if acc == nil {
		panic(ErrNilAccessor)
	}
	return newField(acc, newSettings(opts))
}

// ForFunc creates a field validator for loosely-typed records from an
// explicit getter and field name.
func ForFunc[R any](get Getter[R], fieldName string, opts ...Option) *FieldValidator[R] {
	return For(Named(fieldName, get), opts...)
}

func newField[R any](acc Accessor[R], cfg settings) *FieldValidator[R] {
	name := acc.Name()
	if cfg.fieldName != "" {
		name = cfg.fieldName
	}
	cfg.fieldName = ""

	return &FieldValidator[R]{
		name:           name,
		value:          acc.Value,
		preserveHeader: true,
		cfg:            cfg,
	}
}

// Name returns the field name used in reported errors.
func (fv *FieldValidator[R]) Name() string { return fv.name }

// Rules returns the number of rules in the chain.
func (fv *FieldValidator[R]) Rules() int { return len(fv.rules) }

// ValidationErrors returns the result of the last Validate call.
func (fv *FieldValidator[R]) ValidationErrors() ValidationErrors { return fv.errors }

// IsValid reports whether the last Validate call produced no error.
func (fv *FieldValidator[R]) IsValid() bool { return len(fv.errors) == 0 }

// SetRowIndex makes every subsequent message start with "Row i".
func (fv *FieldValidator[R]) SetRowIndex(i int) *FieldValidator[R] {
	fv.rowIndex = &i
	return fv
}

// SetExtraContext stores a caller value handed to override-message functions
// and IfExtra checks. The validator never inspects it.
func (fv *FieldValidator[R]) SetExtraContext(extra any) *FieldValidator[R] {
	fv.extra = extra
	return fv
}

// AddRule appends a custom rule. Panics with ErrIncompleteRule if IsValid or
// DefaultMessage is missing.
func (fv *FieldValidator[R]) AddRule(rule *Rule[R]) *FieldValidator[R] {
	if rule == nil || rule.IsValid == nil || rule.DefaultMessage == nil {
		panic(fmt.Errorf("%w: field %q", ErrIncompleteRule, fv.name))
	}
	fv.rules = append(fv.rules, rule)
	return fv
}

// requireFunc panics with ErrIncompleteRule when a builder receives a nil
// function, so a broken chain fails at registration and never during Validate.
func (fv *FieldValidator[R]) requireFunc(isNil bool, what string) {
	if isNil {
		panic(fmt.Errorf("%w: field %q: nil %s", ErrIncompleteRule, fv.name, what))
	}
}

// OverrideErrorMessage replaces the message of the most recently added rule.
//
// The override hides the "Row N Field X:" header for the whole field
// validator, not only for this rule, unless keepHeader is true. The last
// override registered decides the header for every rule of the chain.
func (fv *FieldValidator[R]) OverrideErrorMessage(msg func(R) string, keepHeader ...bool) *FieldValidator[R] {
	fv.requireFunc(msg == nil, "message")
	return fv.OverrideErrorMessageExtra(func(rec R, _ any) string { return msg(rec) }, keepHeader...)
}

// OverrideErrorMessageExtra is OverrideErrorMessage with access to the extra context.
func (fv *FieldValidator[R]) OverrideErrorMessageExtra(msg func(R, any) string, keepHeader ...bool) *FieldValidator[R] {
	if len(fv.rules) == 0 {
		panic(fmt.Errorf("%w: field %q", ErrNoRule, fv.name))
	}
	fv.requireFunc(msg == nil, "message")
	fv.preserveHeader = len(keepHeader) > 0 && keepHeader[0]
	fv.rules[len(fv.rules)-1].OverrideMessage = msg
	return fv
}

// If runs build against this validator and gates every rule it adds behind
// predicate. The predicate is evaluated per record; when false, the gated
// rules are skipped. Rules that already carry a precondition (nested If)
// keep it and require both.
func (fv *FieldValidator[R]) If(predicate func(R) bool, build func(*FieldValidator[R])) *FieldValidator[R] {
	fv.requireFunc(predicate == nil, "predicate")
	fv.requireFunc(build == nil, "builder")
	before := len(fv.rules)
	build(fv)
	for _, rule := range fv.rules[before:] {
		rule.gate(predicate)
	}
	return fv
}

// IfFunc adds a single custom check that only runs when predicate holds.
func (fv *FieldValidator[R]) IfFunc(predicate func(R) bool, check func(R) bool) *FieldValidator[R] {
	fv.requireFunc(check == nil, "check")
	return fv.AddRule(&Rule[R]{
		Kind:           KeyCondition,
		Precondition:   predicate,
		IsValid:        check,
		DefaultMessage: fv.staticMessage(KeyCondition),
	})
}

// IfExtra is IfFunc for checks that need the extra context.
func (fv *FieldValidator[R]) IfExtra(predicate func(R) bool, check func(R, any) bool) *FieldValidator[R] {
	fv.requireFunc(check == nil, "check")
	return fv.AddRule(&Rule[R]{
		Kind:           KeyCondition,
		Precondition:   predicate,
		IsValid:        func(rec R) bool { return check(rec, fv.extra) },
		DefaultMessage: fv.staticMessage(KeyCondition),
	})
}

// Must adds an unconditional custom check.
func (fv *FieldValidator[R]) Must(check func(R) bool) *FieldValidator[R] {
	return fv.IfFunc(nil, check)
}

// MustExtra is Must for checks that need the extra context.
func (fv *FieldValidator[R]) MustExtra(check func(R, any) bool) *FieldValidator[R] {
	return fv.IfExtra(nil, check)
}

// Validate evaluates the chain against rec, replacing the previous result.
func (fv *FieldValidator[R]) Validate(rec R) *FieldValidator[R] {
	fv.errors = nil
	for _, rule := range fv.rules {
		if rule.Passes(rec) {
			continue
		}
		fv.errors = append(fv.errors, Failure(fv.name, fv.compose(rule, rec)))
		break
	}
	return fv
}

// compose prefixes the rule message with the row and field header when enabled.
func (fv *FieldValidator[R]) compose(rule *Rule[R], rec R) string {
	var b strings.Builder
	if fv.preserveHeader {
		if fv.rowIndex != nil {
			b.WriteString(fv.cfg.messages.T(fv.cfg.lang, KeyHeaderRow, "index", strconv.Itoa(*fv.rowIndex)))
			b.WriteByte(' ')
		}
		b.WriteString(fv.cfg.messages.T(fv.cfg.lang, KeyHeaderField, "field", fv.name))
		b.WriteString(": ")
	}
	b.WriteString(rule.message(rec, fv.extra))
	return b.String()
}

// text reads the field value, mapping null to "" for message placeholders.
func (fv *FieldValidator[R]) text(rec R) string {
	if v := fv.value(rec); v != nil {
		return *v
	}
	return ""
}

func (fv *FieldValidator[R]) staticMessage(key string, args ...string) func(R) string {
	return func(R) string {
		return fv.cfg.messages.T(fv.cfg.lang, key, args...)
	}
}

// valueMessage renders key with the current value as %{value} plus args.
func (fv *FieldValidator[R]) valueMessage(key string, args ...string) func(R) string {
	return func(rec R) string {
		return fv.cfg.messages.T(fv.cfg.lang, key, append([]string{"value", fv.text(rec)}, args...)...)
	}
}
