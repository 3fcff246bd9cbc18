package validator

import "github.com/google/uuid"

// IsUUID fails unless the value is a UUID in the canonical 36-character
// hyphenated form. URN and braced forms are rejected. A null value fails.
func (fv *FieldValidator[R]) IsUUID() *FieldValidator[R] {
	return fv.AddRule(&Rule[R]{
		Kind: KeyUUID,
		IsValid: func(rec R) bool {
			v := fv.value(rec)
			return v != nil && canonicalUUID(*v)
		},
		DefaultMessage: fv.valueMessage(KeyUUID),
	})
}

// canonicalUUID checks length and hyphen positions before handing off to uuid.Parse.
func canonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
