// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportPayload struct {
	ReportType string `validate:"required,oneof=content creator user message"`
	Reason     string `validate:"required"`
	Details    string `validate:"max=10"`
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(reportPayload{ReportType: "content", Reason: "spam"})
	assert.NoError(t, err)

	err = ValidateStruct(reportPayload{ReportType: "post", Reason: "spam"})
	assert.Error(t, err)

	err = ValidateStruct(reportPayload{ReportType: "content"})
	assert.Error(t, err)
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(reportPayload{ReportType: "post", Details: "way too long for this"})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 3)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}

	assert.Equal(t, "oneof", byField["reporttype"].Tag)
	assert.Contains(t, byField["reporttype"].Message, "must be one of")
	assert.Equal(t, "required", byField["reason"].Tag)
	assert.Equal(t, "max", byField["details"].Tag)
}
