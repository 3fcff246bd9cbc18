package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcheck/pkg/validator"
)

func TestIsMemberOf(t *testing.T) {
	t.Parallel()
	codes := []string{"P", "F", "R", "A"}

	t.Run("passes for member", func(t *testing.T) {
		assert.True(t, keyField().IsMemberOf(codes).Validate(Row{Key: ptr("P")}).IsValid())
	})

	t.Run("is case sensitive by default", func(t *testing.T) {
		fv := keyField().IsMemberOf(codes).Validate(Row{Key: ptr("p")})
		require.False(t, fv.IsValid())
		assert.Equal(t, "Field Key: 'p' is not an allowed value", fv.ValidationErrors()[0].ErrorMessage())
	})

	t.Run("case insensitive comparer", func(t *testing.T) {
		fv := keyField().IsMemberOf(codes, validator.CaseInsensitive).Validate(Row{Key: ptr("p")})
		assert.True(t, fv.IsValid())
	})

	t.Run("custom comparer", func(t *testing.T) {
		prefix := func(allowed, v string) bool { return len(v) > 0 && v[:1] == allowed }
		assert.True(t, keyField().IsMemberOf(codes, prefix).Validate(Row{Key: ptr("Rxx")}).IsValid())
	})

	t.Run("null is never a member", func(t *testing.T) {
		assert.False(t, keyField().IsMemberOf(codes).Validate(Row{}).IsValid())
	})

	t.Run("empty set rejects everything", func(t *testing.T) {
		assert.False(t, keyField().IsMemberOf(nil).Validate(Row{Key: ptr("P")}).IsValid())
	})
}

func TestIsNotMemberOf(t *testing.T) {
	t.Parallel()
	forbidden := []string{"N/A", "TBD"}

	fv := keyField().IsNotMemberOf(forbidden, validator.CaseInsensitive)
	assert.True(t, fv.Validate(Row{Key: ptr("OK")}).IsValid())
	assert.True(t, fv.Validate(Row{}).IsValid())

	fv.Validate(Row{Key: ptr("tbd")})
	require.False(t, fv.IsValid())
	assert.Equal(t, "Field Key: 'tbd' is a forbidden value", fv.ValidationErrors()[0].ErrorMessage())
}
