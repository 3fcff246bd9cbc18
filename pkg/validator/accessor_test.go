package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcheck/pkg/validator"
)

type product struct {
	SKU   string
	Label *string
	Price float64
	note  string
}

type linked struct {
	*product
	Ref string
}

func TestMember(t *testing.T) {
	t.Parallel()

	t.Run("string field", func(t *testing.T) {
		acc := validator.Member[product]("SKU")
		assert.Equal(t, "SKU", acc.Name())
		got := acc.Value(product{SKU: "A1"})
		require.NotNil(t, got)
		assert.Equal(t, "A1", *got)
	})

	t.Run("pointer field", func(t *testing.T) {
		acc := validator.Member[product]("Label")
		assert.Nil(t, acc.Value(product{}))
		assert.Equal(t, "x", *acc.Value(product{Label: ptr("x")}))
	})

	t.Run("unexported field", func(t *testing.T) {
		acc := validator.Member[product]("note")
		assert.Equal(t, "n", *acc.Value(product{note: "n"}))
	})

	t.Run("pointer record", func(t *testing.T) {
		acc := validator.Member[*product]("SKU")
		assert.Nil(t, acc.Value(nil))
		assert.Equal(t, "B2", *acc.Value(&product{SKU: "B2"}))
	})

	t.Run("promoted through nil embedded pointer", func(t *testing.T) {
		acc := validator.Member[linked]("SKU")
		assert.Nil(t, acc.Value(linked{}))
		assert.Equal(t, "C3", *acc.Value(linked{product: &product{SKU: "C3"}}))
	})

	t.Run("unknown field panics", func(t *testing.T) {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, validator.ErrUnknownMember)
		}()
		validator.Member[product]("Missing")
	})

	t.Run("non string field panics", func(t *testing.T) {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, validator.ErrUnsupportedMember)
		}()
		validator.Member[product]("Price")
	})

	t.Run("non struct record panics", func(t *testing.T) {
		assert.Panics(t, func() { validator.Member[string]("Len") })
	})
}

func TestNamed(t *testing.T) {
	t.Parallel()

	acc := validator.Named("sku", func(m map[string]string) *string {
		if v, ok := m["sku"]; ok {
			return &v
		}
		return nil
	})
	assert.Equal(t, "sku", acc.Name())
	assert.Nil(t, acc.Value(map[string]string{}))

	plain := validator.NamedString("sku", func(m map[string]string) string { return m["sku"] })
	got := plain.Value(map[string]string{})
	require.NotNil(t, got, "NamedString never reports null")
	assert.Empty(t, *got)

	assert.Panics(t, func() { validator.Named[product]("x", nil) })
	assert.Panics(t, func() { validator.NamedString[product]("x", nil) })
	assert.Panics(t, func() { validator.For[product](nil) })
}
