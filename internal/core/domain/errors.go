package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexNotReady indicates the index has not been built yet
	ErrIndexNotReady = errors.New("index not ready")

	// ErrStoreUnavailable indicates a collaborator store could not be reached
	ErrStoreUnavailable = errors.New("store unavailable")
)
