package validator_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcheck/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		validator.Failure("Key", "Field Key: Value is mandatory"),
		validator.Failure("Code", "Field Code: 'x' is not an allowed value"),
		validator.Failure("Key", "Row 2 Field Key: Value is mandatory"),
	}

	assert.True(t, errs.Has("Key"))
	assert.False(t, errs.Has("Status"))
	assert.Equal(t, []string{"Key", "Code"}, errs.Fields())
	assert.Equal(t, []string{"Field Key: Value is mandatory", "Row 2 Field Key: Value is mandatory"}, errs.Get("Key"))
	assert.Nil(t, errs.Get("Status"))
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())

	assert.Equal(t,
		"validation failed: Field Key: Value is mandatory; Field Code: 'x' is not an allowed value; Row 2 Field Key: Value is mandatory",
		errs.Error())
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := validator.Failure("Key", "Field Key: Value is mandatory")
	assert.Equal(t, "Key", err.FieldName())
	assert.Equal(t, "Field Key: Value is mandatory", err.ErrorMessage())
	assert.Equal(t, "Key: Field Key: Value is mandatory", err.Error())

	data, jerr := json.Marshal(validator.ValidationErrors{err})
	require.NoError(t, jerr)
	assert.JSONEq(t, `[{"field":"Key","message":"Field Key: Value is mandatory"}]`, string(data))
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{validator.Failure("Key", "bad")}
	wrapped := fmt.Errorf("import: %w", errs)

	assert.True(t, validator.IsValidationError(wrapped))
	assert.Equal(t, errs, validator.ExtractValidationErrors(wrapped))

	plain := errors.New("boom")
	assert.False(t, validator.IsValidationError(plain))
	assert.Nil(t, validator.ExtractValidationErrors(plain))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}
