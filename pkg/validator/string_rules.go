package validator

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// IsNotNull fails when the value is absent. The empty string passes.
func (fv *FieldValidator[R]) IsNotNull() *FieldValidator[R] {
	return fv.AddRule(&Rule[R]{
		Kind:           KeyNotNull,
		IsValid:        func(rec R) bool { return fv.value(rec) != nil },
		DefaultMessage: fv.staticMessage(KeyNotNull),
	})
}

// IsNotNullOrEmpty fails when the value is absent or "".
func (fv *FieldValidator[R]) IsNotNullOrEmpty() *FieldValidator[R] {
	return fv.AddRule(&Rule[R]{
		Kind: KeyNotNullOrEmpty,
		IsValid: func(rec R) bool {
			v := fv.value(rec)
			return v != nil && *v != ""
		},
		DefaultMessage: fv.staticMessage(KeyNotNullOrEmpty),
	})
}

// HasLength checks the value length in characters against min and max.
//
// The check is length >= min || length <= max, kept as-is for compatibility
// with existing rule sets: with valid bounds it accepts every length, so a
// value of length 2 passes HasLength(5, 10). Use HasLengthWithin for an
// inclusive range. A null value has length 0.
//
// Panics with ErrInvalidLengthRange if a bound is negative or max < min.
func (fv *FieldValidator[R]) HasLength(min, max int) *FieldValidator[R] {
	checkLengthRange(min, max)
	return fv.AddRule(&Rule[R]{
		Kind: KeyLength,
		IsValid: func(rec R) bool {
			n := fv.length(rec)
			return n >= min || n <= max
		},
		DefaultMessage: fv.staticMessage(KeyLength, "min", strconv.Itoa(min), "max", strconv.Itoa(max)),
	})
}

// HasLengthWithin requires min <= length <= max, counted in characters.
// Same construction checks as HasLength.
func (fv *FieldValidator[R]) HasLengthWithin(min, max int) *FieldValidator[R] {
	checkLengthRange(min, max)
	return fv.AddRule(&Rule[R]{
		Kind: KeyLength,
		IsValid: func(rec R) bool {
			n := fv.length(rec)
			return n >= min && n <= max
		},
		DefaultMessage: fv.staticMessage(KeyLength, "min", strconv.Itoa(min), "max", strconv.Itoa(max)),
	})
}

func checkLengthRange(min, max int) {
	if min < 0 || max < 0 {
		panic(fmt.Errorf("%w: min %d and max %d can't be negative", ErrInvalidLengthRange, min, max))
	}
	if max < min {
		panic(fmt.Errorf("%w: max %d can't be smaller than min %d", ErrInvalidLengthRange, max, min))
	}
}

func (fv *FieldValidator[R]) length(rec R) int {
	v := fv.value(rec)
	if v == nil {
		return 0
	}
	return utf8.RuneCountInString(*v)
}
