package validator

import (
	"iter"
	"slices"
)

// RecordValidator runs a set of field validators over one record or an
// ordered sequence of records and accumulates every error.
//
// Errors are appended by each Validate and ValidateList call and never
// cleared implicitly; build one RecordValidator per validation run or call
// Reset in between. Not safe for concurrent use.
type RecordValidator[R any] struct {
	cfg    settings
	fields []*FieldValidator[R]
	errors ValidationErrors
}

// Init creates an empty RecordValidator. Without options, row indexes are
// hidden, numbering starts at 1 and messages are English.
func Init[R any](opts ...Option) *RecordValidator[R] {
	return &RecordValidator[R]{cfg: newSettings(opts)}
}

// For registers a field validator for acc and configures its rules with
// build. An optional fieldName overrides acc.Name(). The new field inherits
// the language, locale and messages of the record validator.
func (v *RecordValidator[R]) For(acc Accessor[R], build func(*FieldValidator[R]), fieldName ...string) *RecordValidator[R] {
	if acc == nil {
		panic(ErrNilAccessor)
	}

	cfg := v.cfg
	if len(fieldName) > 0 {
		cfg.fieldName = fieldName[0]
	}
	fv := newField(acc, cfg)
	build(fv)
	return v.AddProperty(fv)
}

// ForIf is For with every rule gated behind predicate.
func (v *RecordValidator[R]) ForIf(acc Accessor[R], predicate func(R) bool, build func(*FieldValidator[R]), fieldName ...string) *RecordValidator[R] {
	return v.For(acc, func(fv *FieldValidator[R]) {
		fv.If(predicate, build)
	}, fieldName...)
}

// ForFunc registers a field validator for loosely-typed records from an
// explicit getter and field name.
func (v *RecordValidator[R]) ForFunc(get Getter[R], fieldName string, build func(*FieldValidator[R])) *RecordValidator[R] {
	return v.For(Named(fieldName, get), build)
}

// AddProperty registers a pre-built field validator, which lets several
// record validators share one rule definition.
func (v *RecordValidator[R]) AddProperty(fv *FieldValidator[R]) *RecordValidator[R] {
	if fv != nil {
		v.fields = append(v.fields, fv)
	}
	return v
}

// Validate runs every field validator against rec in registration order.
func (v *RecordValidator[R]) Validate(rec R) *RecordValidator[R] {
	before := len(v.errors)
	v.validate(rec)
	v.cfg.logger.Debug("record validated",
		"fields", len(v.fields),
		"errors", len(v.errors)-before,
	)
	return v
}

// ValidateList validates records in order. Each record gets the next row
// index, starting at the configured value; the index appears in message
// headers when row indexes are shown.
func (v *RecordValidator[R]) ValidateList(records []R) *RecordValidator[R] {
	return v.ValidateSeq(slices.Values(records))
}

// ValidateSeq is ValidateList over an iterator, for streamed input.
func (v *RecordValidator[R]) ValidateSeq(records iter.Seq[R]) *RecordValidator[R] {
	before := len(v.errors)
	index := v.cfg.rowIndexStartsAt
	count := 0

	for rec := range records {
		if v.cfg.showRowIndex {
			for _, fv := range v.fields {
				fv.SetRowIndex(index)
			}
		}
		v.validate(rec)
		index++
		count++
	}

	v.cfg.logger.Debug("records validated",
		"records", count,
		"fields", len(v.fields),
		"errors", len(v.errors)-before,
	)
	return v
}

func (v *RecordValidator[R]) validate(rec R) {
	for _, fv := range v.fields {
		fv.Validate(rec)
		if !fv.IsValid() {
			v.errors = append(v.errors, fv.ValidationErrors()...)
		}
	}
}

// ValidationErrors returns every error accumulated so far, in record then
// field order.
func (v *RecordValidator[R]) ValidationErrors() ValidationErrors {
	return v.errors
}

// IsValid reports whether no error has been accumulated.
func (v *RecordValidator[R]) IsValid() bool {
	return len(v.errors) == 0
}

// Err returns the accumulated errors as an error, or nil when valid.
func (v *RecordValidator[R]) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	return slices.Clone(v.errors)
}

// Reset drops the accumulated errors so the validator can be reused.
func (v *RecordValidator[R]) Reset() *RecordValidator[R] {
	v.errors = nil
	return v
}
