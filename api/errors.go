// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for cowring.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidCapacity = fmt.Errorf("%w: capacity must be positive", ErrInvalidArgument)
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotFound        = errors.New("resource not found")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeOutOfRange
	ErrCodeNotFound
	ErrCodeInternal
)

// String returns the code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel, if any, for errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap creates a structured error whose message and identity come from err.
func Wrap(code ErrorCode, err error) *Error {
	e := NewError(code, err.Error())
	e.Err = err
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode carried by err, ErrCodeInternal otherwise.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
