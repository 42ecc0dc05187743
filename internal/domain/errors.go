package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced at the request boundary. Callers classify with errors.Is.
var (
	// Bad or empty user input, reported before any network call.
	ErrValidation = errors.New("validation error")
	// Geocoding returned no candidate location.
	ErrNotFound = errors.New("not found")
	// Network, non-success status or malformed body from a provider.
	ErrUpstream = errors.New("upstream error")
)

// UpstreamError carries provider detail for a failed outbound call.
// It matches ErrUpstream under errors.Is.
type UpstreamError struct {
	Provider string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// ValidationError holds a message fit to show the user. It matches ErrValidation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
