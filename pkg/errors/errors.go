// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
)

// Error is an error with a status code and an optional cause.
type Error struct {
	Code    Status
	Message string
	Cause   error
}

// Wrap wraps the given error with the status code. Wrap returns nil if err is
// nil. If err is already an *Error and the status is not a known error, err is
// returned unchanged.
func (s Status) Wrap(err error) error {
	if err == nil {
		// The return type must be `error` - otherwise this return statement
		// can cause strange errors
		return nil
	}

	if !s.IsKnownError() {
		if _, ok := err.(*Error); ok {
			return err
		}
	}

	return &Error{Code: s, Cause: err}
}

// With creates a new error from the status code and the given values.
func (s Status) With(v ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprint(v...)}
}

// WithFormat creates a new error from the status code and the formatted
// message. If the format wraps an error with %w, that error is recorded as
// the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)

	e := &Error{Code: s, Message: err.Error()}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		e.Cause = u.Unwrap()
	}
	return e
}

// WithCauseAndFormat creates a new error from the status code, the given
// cause, and the formatted message.
func (s Status) WithCauseAndFormat(cause error, format string, args ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Error implements error.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Code.Error()
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is returns true if the target is a Status or *Error with the same code.
// This makes errors.Is(err, errors.Unauthorized) work.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Status:
		return e.Code == t
	case *Error:
		return e.Code == t.Code
	default:
		return false
	}
}

// Code returns the status code of the error, or UnknownError if the error is
// not an *Error or Status.
func Code(err error) Status {
	switch err := err.(type) {
	case nil:
		return OK
	case Status:
		return err
	case *Error:
		return err.Code
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return UnknownError
}

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }
