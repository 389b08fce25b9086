package service

import (
	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
)

const (
	ErrMissingSender      errors.ErrorCode = 400
	ErrMissingMessage     errors.ErrorCode = 401
	ErrEmptyMessage       errors.ErrorCode = 402
	ErrInvalidUser        errors.ErrorCode = 403
	ErrStoreUnavailable   errors.ErrorCode = 404
	ErrRecordFailed       errors.ErrorCode = 405
	ErrListFailed         errors.ErrorCode = 406
	ErrInvalidParticipant errors.ErrorCode = 407
)

type errorDescription struct {
	code        errors.ErrorCode
	description string
}

var errorDescriptions = []errorDescription{
	{code: ErrMissingSender, description: "Incomplete data: sender_id is required"},
	{code: ErrMissingMessage, description: "Incomplete data: message is required"},
	{code: ErrEmptyMessage, description: "Invalid data: message must not be empty"},
	{code: ErrInvalidUser, description: "Parameter userId is required and must be a non-zero 32-bit integer"},
	{code: ErrStoreUnavailable, description: "Database connection failed"},
	{code: ErrRecordFailed, description: "Failed to record message"},
	{code: ErrListFailed, description: "Failed to fetch messages"},
	{code: ErrInvalidParticipant, description: "Invalid data: sender_id and receiver_id must be 32-bit integers"},
}

// IsValidationError reports whether the error was caused by the input rather
// than by the store.
func IsValidationError(err error) bool {
	return errors.IsErrorWithCode(err, ErrMissingSender) ||
		errors.IsErrorWithCode(err, ErrMissingMessage) ||
		errors.IsErrorWithCode(err, ErrEmptyMessage) ||
		errors.IsErrorWithCode(err, ErrInvalidUser) ||
		errors.IsErrorWithCode(err, ErrInvalidParticipant)
}

// Describe renders a human readable description of an error returned by the
// services: the description of its kind followed by the root cause if any.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	for _, desc := range errorDescriptions {
		if !errors.IsErrorWithCode(err, desc.code) {
			continue
		}

		if cause := rootCause(err); cause != nil {
			return desc.description + ": " + cause.Error()
		}
		return desc.description
	}

	return err.Error()
}

func rootCause(err error) error {
	var cause error
	for current := errors.Unwrap(err); current != nil; current = errors.Unwrap(current) {
		cause = current
	}
	return cause
}
