package service

import (
	"testing"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestUnit_Describe_WhenNil_ExpectEmpty(t *testing.T) {
	assert.Equal(t, "", Describe(nil))
}

func TestUnit_Describe_WithoutCause(t *testing.T) {
	err := errors.NewCode(ErrMissingSender)

	assert.Equal(t, "Incomplete data: sender_id is required", Describe(err))
}

func TestUnit_Describe_WithCause(t *testing.T) {
	err := errors.WrapCode(errSample, ErrListFailed)

	assert.Equal(t, "Failed to fetch messages: some error", Describe(err))
}

func TestUnit_Describe_WhenUnknownError_ExpectErrorText(t *testing.T) {
	assert.Equal(t, "some error", Describe(errSample))
}

func TestUnit_IsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(errors.NewCode(ErrInvalidUser)))
	assert.True(t, IsValidationError(errors.NewCode(ErrEmptyMessage)))
	assert.True(t, IsValidationError(errors.NewCode(ErrInvalidParticipant)))
	assert.False(t, IsValidationError(errors.NewCode(ErrStoreUnavailable)))
	assert.False(t, IsValidationError(errSample))
}
