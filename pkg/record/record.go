package record

import (
	"fmt"
	"net/url"

	"github.com/dmitrymomot/strcheck/pkg/validator"
)

// Getter is implemented by every record shape of this package.
type Getter interface {
	Get(key string) *string
}

// Key returns an accessor reading key from a loosely-typed record.
func Key[R Getter](key string) validator.Accessor[R] {
	return validator.Named(key, func(rec R) *string {
		return rec.Get(key)
	})
}

// Map is a record of string fields. A missing key is null.
type Map map[string]string

func (m Map) Get(key string) *string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	return &v
}

// Values is a record backed by form data. The first value of a key is used;
// a key without values is null.
type Values url.Values

func (v Values) Get(key string) *string {
	vs := v[key]
	if len(vs) == 0 {
		return nil
	}
	return &vs[0]
}

// Any is a record decoded from JSON or similar. nil and missing keys are
// null; strings are used verbatim; stringers are rendered with String and
// everything else with fmt.Sprint.
type Any map[string]any

func (a Any) Get(key string) *string {
	raw, ok := a[key]
	if !ok || raw == nil {
		return nil
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	return &s
}
