package validator_test

import "github.com/dmitrymomot/strcheck/pkg/validator"

type Row struct {
	Key           *string
	DateTimeValue *string
	DecimalValue  *string
}

func ptr(s string) *string { return &s }

func keyField(opts ...validator.Option) *validator.FieldValidator[Row] {
	return validator.For(validator.Member[Row]("Key"), opts...)
}
