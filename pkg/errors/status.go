// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

// Status is a request status code.
type Status uint64

const (
	// OK means the request completed.
	OK Status = 200

	// BadRequest means the request was invalid.
	BadRequest Status = 400

	// Unauthorized means the caller is not authorized for the operation.
	Unauthorized Status = 401

	// NotFound means a record was not found.
	NotFound Status = 404

	// Conflict means the request conflicts with existing state, such as
	// initializing a record twice.
	Conflict Status = 409

	// ResourceExhausted means a compute or iteration budget was exceeded.
	ResourceExhausted Status = 429

	// InternalError means an internal invariant was violated.
	InternalError Status = 500

	// UnknownError means the error is unknown.
	UnknownError Status = 501

	// UpstreamError means a call into the host subsystem failed.
	UpstreamError Status = 502
)

// Success returns true if the status represents success.
func (s Status) Success() bool { return s < 300 }

// IsKnownError returns true if the status is non-zero and not UnknownError.
func (s Status) IsKnownError() bool { return s != 0 && s != UnknownError }

// IsClientError returns true if the status is a client error.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError returns true if the status is a server error.
func (s Status) IsServerError() bool { return s >= 500 }

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case BadRequest:
		return "bad request"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	case ResourceExhausted:
		return "resource exhausted"
	case InternalError:
		return "internal error"
	case UnknownError:
		return "unknown error"
	case UpstreamError:
		return "upstream error"
	default:
		return "unknown"
	}
}

// Error implements error.
func (s Status) Error() string { return s.String() }
