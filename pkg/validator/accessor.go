package validator

import (
	"fmt"
	"reflect"
)

// Getter reads the string under test from a record. A nil result means the
// value is absent (null), which is distinct from the empty string.
type Getter[R any] func(R) *string

// Accessor names a record field and reads its value. Field validators only
// depend on this interface, so typed and loosely-typed records are handled
// by the same evaluation code.
type Accessor[R any] interface {
	Name() string
	Value(R) *string
}

// named is the loosely-typed accessor: an explicit name plus a getter.
type named[R any] struct {
	name string
	get  Getter[R]
}

func (a named[R]) Name() string        { return a.name }
func (a named[R]) Value(rec R) *string { return a.get(rec) }

// Named builds an accessor from an explicit field name and getter. Use it
// for records whose layout is only known at run time, such as maps.
func Named[R any](name string, get Getter[R]) Accessor[R] {
	if get == nil {
		panic(fmt.Errorf("%w: field %q", ErrNilAccessor, name))
	}
	return named[R]{name: name, get: get}
}

// NamedString is Named for getters that can not produce a null value.
func NamedString[R any](name string, get func(R) string) Accessor[R] {
	if get == nil {
		panic(fmt.Errorf("%w: field %q", ErrNilAccessor, name))
	}
	return named[R]{name: name, get: func(rec R) *string {
		s := get(rec)
		return &s
	}}
}

// member is the typed accessor: a struct field resolved once by reflection.
type member[R any] struct {
	name    string
	index   []int
	ptrRec  bool
	ptrElem bool
}

// Member resolves the struct field called name on R (or *R) and reads it.
// The field must be string or *string; a nil *string reads as null.
// Panics with ErrUnknownMember or ErrUnsupportedMember on a bad name, so
// typos surface when the validator is built.
func Member[R any](name string) Accessor[R] {
	t := reflect.TypeFor[R]()

	m := member[R]{name: name}
	if t.Kind() == reflect.Pointer {
		m.ptrRec = true
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Errorf("%w: %s is not a struct", ErrUnknownMember, t))
	}

	f, ok := t.FieldByName(name)
	if !ok {
		panic(fmt.Errorf("%w: %s.%s", ErrUnknownMember, t, name))
	}

	switch {
	case f.Type.Kind() == reflect.String:
	case f.Type.Kind() == reflect.Pointer && f.Type.Elem().Kind() == reflect.String:
		m.ptrElem = true
	default:
		panic(fmt.Errorf("%w: %s.%s is %s", ErrUnsupportedMember, t, name, f.Type))
	}

	m.index = f.Index
	return m
}

func (m member[R]) Name() string { return m.name }

func (m member[R]) Value(rec R) *string {
	v := reflect.ValueOf(&rec).Elem()
	if m.ptrRec {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	// FieldByIndexErr fails on a nil embedded pointer; treat it as absent.
	fv, err := v.FieldByIndexErr(m.index)
	if err != nil {
		return nil
	}

	if m.ptrElem {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}

	s := fv.String()
	return &s
}
