// Package validator checks the string fields of records against ordered
// rule chains and reports every failure as a readable message.
//
// It targets ingestion and form code where values arrive as text and are
// parsed into richer types later: the rules verify presence, length, set
// membership, patterns and whether a value would parse as a decimal number,
// a date or a UUID.
//
// # Architecture
//
//   - Rule             – precondition, check and message producer for one value
//   - FieldValidator   – ordered rule chain bound to one field accessor
//   - RecordValidator  – field validators applied to one record or a list
//   - ValidationError  – field name plus composed message
//   - Accessor         – Member (struct field by name) or Named (explicit getter)
//
// Evaluation is synchronous. For each record, field validators run in
// registration order and every failing field contributes one error. Inside a
// field validator the first applicable failing rule wins and the rest of the
// chain is skipped. Null values are nil *string.
//
// # Usage
//
//	type Row struct {
//		Key           *string
//		DateTimeValue *string
//		DecimalValue  *string
//	}
//
//	v := validator.Init[Row](validator.WithShowRowIndex(true)).
//		For(validator.Member[Row]("Key"), func(f *validator.FieldValidator[Row]) {
//			f.IsNotNull().HasLengthWithin(5, 10)
//		}).
//		ForIf(validator.Member[Row]("DecimalValue"),
//			func(r Row) bool { return r.Key != nil && *r.Key == "P" },
//			func(f *validator.FieldValidator[Row]) { f.IsNotNull().TryParseDecimal() },
//		).
//		ValidateList(rows)
//
//	for _, e := range v.ValidationErrors() {
//		fmt.Println(e.ErrorMessage()) // Row 2 Field Key: Value is mandatory
//	}
//
// # Messages
//
// Default messages come from embedded English and French templates rendered
// by pkg/i18n; select the language with WithLanguage or supply another
// MessageProvider with WithMessages. OverrideErrorMessage replaces the message
// of the last added rule and, unless asked to keep it, drops the
// "Row N Field X:" header for the whole field validator.
//
// # Error Handling
//
// Misconfigured rules (negative length bounds, empty date layout, invalid
// pattern, unknown struct member) panic when the rule is built. Record content
// never panics; it only produces ValidationError values. RecordValidator.Err
// returns them as a ValidationErrors error for callers that prefer an error
// return.
package validator
