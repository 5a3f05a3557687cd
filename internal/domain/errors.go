package domain

import "errors"

// Domain-specific errors for calculator and case operations.
var (
	// Calculator errors
	ErrInvalidArgument          = errors.New("invalid argument")
	ErrComputationLimitExceeded = errors.New("computation limit exceeded")

	// Case errors
	ErrCaseNotFound = errors.New("case not found")
	ErrCaseModified = errors.New("case was modified concurrently")
	ErrEmptyTitle   = errors.New("title is required")

	// Validation errors
	ErrInvalidStatus     = errors.New("invalid case status")
	ErrInvalidTransition = errors.New("invalid status transition")
)
