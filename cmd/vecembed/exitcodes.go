package main

import (
	"errors"

	"github.com/viant/vecembed/vector"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config, invalid width)
	ExitDataError   = 3 // Data error (malformed vector, dimension mismatch, zero vector)
)

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// exitCodeFor maps an error returned by a command to the process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	switch {
	case errors.Is(err, vector.ErrValidation),
		errors.Is(err, vector.ErrType),
		errors.Is(err, vector.ErrDimensionMismatch),
		errors.Is(err, vector.ErrDivideByZero):
		return ExitDataError
	}
	return ExitError
}
