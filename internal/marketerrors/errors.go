package marketerrors

import "errors"

// Store-level errors
var (
	ErrNotFound = errors.New("document not found")
)

// Service-level errors
var (
	ErrUnknownResource = errors.New("unknown resource")
	ErrUnsupported     = errors.New("operation not supported for resource")
	ErrInvalidPayload  = errors.New("invalid payload")
)
