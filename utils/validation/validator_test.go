package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructAndFormatErrors(t *testing.T) {
	type searchRequest struct {
		Company string `validate:"required"`
		Query   string `validate:"required,min=3"`
	}
	v := NewValidator()

	require.NoError(t, v.ValidateStruct(searchRequest{Company: "Google", Query: "eng"}))

	err := v.ValidateStruct(searchRequest{Query: "ab"})
	require.Error(t, err)

	fields := FormatValidationErrors(err)
	assert.Equal(t, "Company is required", fields["company"])
	assert.Equal(t, "Query must be at least 3 characters", fields["query"])
}

func TestValidateUUID(t *testing.T) {
	assert.True(t, ValidateUUID("9f1b2c3d-4e5f-6a7b-8c9d-0e1f2a3b4c5d"))
	assert.True(t, ValidateUUID("00000000-0000-0000-0000-000000000000"))

	assert.False(t, ValidateUUID(""))
	assert.False(t, ValidateUUID("123"))
	assert.False(t, ValidateUUID("not-a-uuid"))
	assert.False(t, ValidateUUID("9f1b2c3d-4e5f-6a7b-8c9d"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.Equal(t, "hello", SanitizeString("hel\x00lo"))
	assert.Equal(t, "", SanitizeString("\x00"))
}
