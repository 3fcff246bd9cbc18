package validator

import "strings"

// Comparer decides whether two values are equal for membership rules.
type Comparer func(a, b string) bool

// CaseInsensitive compares under Unicode case folding.
var CaseInsensitive Comparer = strings.EqualFold

func exact(a, b string) bool { return a == b }

// IsMemberOf fails unless the value equals one of values. The comparer
// defaults to exact equality. A null value is never a member.
func (fv *FieldValidator[R]) IsMemberOf(values []string, comparer ...Comparer) *FieldValidator[R] {
	eq := pickComparer(comparer)
	return fv.AddRule(&Rule[R]{
		Kind:           KeyMemberOf,
		IsValid:        func(rec R) bool { return contains(values, fv.value(rec), eq) },
		DefaultMessage: fv.valueMessage(KeyMemberOf),
	})
}

// IsNotMemberOf fails when the value equals one of values. A null value passes.
func (fv *FieldValidator[R]) IsNotMemberOf(values []string, comparer ...Comparer) *FieldValidator[R] {
	eq := pickComparer(comparer)
	return fv.AddRule(&Rule[R]{
		Kind:           KeyNotMemberOf,
		IsValid:        func(rec R) bool { return !contains(values, fv.value(rec), eq) },
		DefaultMessage: fv.valueMessage(KeyNotMemberOf),
	})
}

func pickComparer(comparer []Comparer) Comparer {
	if len(comparer) > 0 && comparer[0] != nil {
		return comparer[0]
	}
	return exact
}

func contains(values []string, v *string, eq Comparer) bool {
	if v == nil {
		return false
	}
	for _, allowed := range values {
		if eq(allowed, *v) {
			return true
		}
	}
	return false
}
