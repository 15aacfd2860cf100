// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-deque.

package api

import (
	"errors"
	"fmt"
)

// Contract violations. These are programming errors reported at the call site.
var (
	ErrNotDereferenceable    = fmt.Errorf("iterator not dereferenceable")
	ErrNotIncrementable      = fmt.Errorf("iterator not incrementable")
	ErrNotDecrementable      = fmt.Errorf("iterator not decrementable")
	ErrOutOfRange            = fmt.Errorf("iterator out of range")
	ErrIndexOutOfRange       = fmt.Errorf("index out of range")
	ErrEmptyContainer        = fmt.Errorf("container is empty")
	ErrStaleIterator         = fmt.Errorf("iterator invalidated by container mutation")
	ErrInvalidIterator       = fmt.Errorf("iterator not bound to a container")
	ErrIncompatibleIterators = fmt.Errorf("iterators belong to different windows")
	ErrInvalidArgument       = fmt.Errorf("invalid argument")
)

// ErrResourceExhausted is returned when storage cannot be allocated.
// It is never a contract violation.
var ErrResourceExhausted = fmt.Errorf("resource exhausted")

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeNotDereferenceable
	ErrCodeNotIncrementable
	ErrCodeNotDecrementable
	ErrCodeOutOfRange
	ErrCodeIndexOutOfRange
	ErrCodeEmptyContainer
	ErrCodeStaleIterator
	ErrCodeInvalidIterator
	ErrCodeIncompatibleIterators
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeUnknown
)

var codeSentinels = map[ErrorCode]error{
	ErrCodeNotDereferenceable:    ErrNotDereferenceable,
	ErrCodeNotIncrementable:      ErrNotIncrementable,
	ErrCodeNotDecrementable:      ErrNotDecrementable,
	ErrCodeOutOfRange:            ErrOutOfRange,
	ErrCodeIndexOutOfRange:       ErrIndexOutOfRange,
	ErrCodeEmptyContainer:        ErrEmptyContainer,
	ErrCodeStaleIterator:         ErrStaleIterator,
	ErrCodeInvalidIterator:       ErrInvalidIterator,
	ErrCodeIncompatibleIterators: ErrIncompatibleIterators,
	ErrCodeInvalidArgument:       ErrInvalidArgument,
	ErrCodeResourceExhausted:     ErrResourceExhausted,
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel matching Code, so errors.Is works on
// structured errors.
func (e *Error) Unwrap() error {
	return codeSentinels[e.Code]
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// CodeError creates a structured error whose message is the code sentinel text.
func CodeError(code ErrorCode) *Error {
	msg := "unknown error"
	if s, ok := codeSentinels[code]; ok {
		msg = s.Error()
	}
	return NewError(code, msg)
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode carried by err. Bare sentinels map to their
// code; nil yields ErrCodeOK and foreign errors ErrCodeUnknown.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	for code, s := range codeSentinels {
		if errors.Is(err, s) {
			return code
		}
	}
	return ErrCodeUnknown
}

// IsContractViolation reports whether err signals misuse of the container
// or its iterators, as opposed to resource exhaustion.
func IsContractViolation(err error) bool {
	switch CodeOf(err) {
	case ErrCodeOK, ErrCodeResourceExhausted, ErrCodeUnknown:
		return false
	}
	return true
}
