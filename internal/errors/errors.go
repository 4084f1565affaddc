package errors

import (
	"errors"
	"fmt"
)

// Common error types for the todo server
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Todo errors
	ErrListNotFound       = errors.New("todo list not found")
	ErrItemNotFound       = errors.New("todo item not found")
	ErrUnrecognizedAction = errors.New("unrecognized action")
	ErrInvalidRequest     = errors.New("invalid request")

	// General errors
	ErrNotFound = errors.New("not found")
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

// IsNotFound reports whether err is any of the not-found variants
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrListNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}
