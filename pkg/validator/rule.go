package validator

// Rule is one check in a field validator's chain. Built-in rules are created
// by the FieldValidator methods; custom rules can be appended with AddRule.
type Rule[R any] struct {
	// Kind is the message key of the rule, e.g. KeyNotNull.
	Kind string

	// Precondition gates the rule. A nil precondition always applies; a
	// false result skips the rule, which then counts as passed.
	Precondition func(R) bool

	// IsValid is the check itself.
	IsValid func(R) bool

	// DefaultMessage renders the message used when no override is set.
	DefaultMessage func(R) string

	// OverrideMessage replaces DefaultMessage. It receives the field
	// validator's extra context.
	OverrideMessage func(R, any) string
}

// Applies reports whether the rule's precondition holds for rec.
func (r *Rule[R]) Applies(rec R) bool {
	return r.Precondition == nil || r.Precondition(rec)
}

// Passes reports whether rec satisfies the rule. IsValid is not called when
// the precondition is false.
func (r *Rule[R]) Passes(rec R) bool {
	return !r.Applies(rec) || r.IsValid(rec)
}

// message picks the override when present, the default otherwise.
func (r *Rule[R]) message(rec R, extra any) string {
	if r.OverrideMessage != nil {
		return r.OverrideMessage(rec, extra)
	}
	return r.DefaultMessage(rec)
}

// gate adds pred in front of the rule's existing precondition.
func (r *Rule[R]) gate(pred func(R) bool) {
	inner := r.Precondition
	if inner == nil {
		r.Precondition = pred
		return
	}
	r.Precondition = func(rec R) bool {
		return pred(rec) && inner(rec)
	}
}
