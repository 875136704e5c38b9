package entity

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Submission errors
	ErrSubmissionNotFound = errors.New("submission not found")

	// Question errors
	ErrQuestionEmpty   = errors.New("question is empty")
	ErrQuestionTooLong = errors.New("question is too long")

	// Infrastructure errors
	ErrUpstream           = errors.New("completion service failure")
	ErrPersistence        = errors.New("persistence failure")
	ErrStoreNotConfigured = fmt.Errorf("%w: DATABASE_URL is not set", ErrPersistence)

	// Validation errors
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidFormat = errors.New("invalid format")

	// Export errors
	ErrFormatNotImplemented = errors.New("export format not implemented")
)
