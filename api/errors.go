// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrOutOfRange      = fmt.Errorf("index out of range")
	ErrZeroCapacity    = fmt.Errorf("capacity must be positive")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeOutOfRange
	ErrCodeInvalidCapacity
	ErrCodeInternal
)

// String returns a short name for the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeInvalidCapacity:
		return "invalid_capacity"
	case ErrCodeInternal:
		return "internal"
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel behind the error for errors.Is.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithCause attaches the sentinel returned by Unwrap.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// NewOutOfRange reports an age index outside [0, capacity).
func NewOutOfRange(index, capacity int) *Error {
	return NewError(ErrCodeOutOfRange, "index larger than ring capacity").
		WithCause(ErrOutOfRange).
		WithContext("index", index).
		WithContext("capacity", capacity)
}

// NewInvalidCapacity reports a ring constructed with capacity < 1.
func NewInvalidCapacity(capacity int) *Error {
	return NewError(ErrCodeInvalidCapacity, "ring capacity must be at least 1").
		WithCause(ErrZeroCapacity).
		WithContext("capacity", capacity)
}
