package errors

import (
	"errors"
	"fmt"
)

// Session gating errors. Missing and malformed sessions are handled by the
// gate and the auth context and never reach page code.
var (
	ErrMissingSession   = errors.New("missing session")
	ErrMalformedSession = errors.New("malformed session")
	ErrUnauthorized     = errors.New("unauthorized")
)

// Authentication errors surfaced to the calling form.
var (
	ErrAuthFailure    = errors.New("authentication failed")
	ErrUnknownFailure = errors.New("unknown failure")
	ErrNotAdmin       = errors.New("auth: administrator role required")
)

// General errors
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
