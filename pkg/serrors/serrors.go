// Package serrors defines semantic error kinds for classifying failures that
// cross the API-client boundary: validation rejections, authorization
// failures, timeouts and connection errors. Kinds are sentinels compatible
// with errors.Is/As so callers can branch on the category while the message
// stays user-facing.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is the marker interface implemented by every sentinel created with
// NewKind. It distinguishes semantic categories from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a comparable sentinel for a semantic error category.
func NewKind(name string) Kind { return kind{s: name} }

// Default kinds covering the failure taxonomy of the client: local validation
// errors, the network-level classes, authorization failures and the remaining
// HTTP statuses.
var (
	// ErrValidation indicates input was rejected locally, before any request.
	ErrValidation = NewKind("VALIDATION")
	// ErrUnauthorized indicates an HTTP 401 from the API.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrConflict indicates a state conflict (e.g. the entity already exists).
	ErrConflict = NewKind("CONFLICT")
	// ErrBadRequest indicates the API rejected the request payload.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrTimeout indicates the request exceeded the configured deadline.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates the API could not be reached at all.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrInternal indicates a server-side failure (HTTP 5xx) or a bug.
	ErrInternal = NewKind("INTERNAL")
)

// Error carries a kind sentinel, an optional wrapped cause and an optional
// message. errors.Is matches either the kind or anything in the cause chain.
//
// Error string formatting:
//   - msg and cause set: "<msg>: <cause>"
//   - only msg set: "<msg>"
//   - only cause set: "<cause>"
//   - neither: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error that also wraps a concrete cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap exposes the wrapped cause to errors.Unwrap/Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches against either the kind sentinel or the wrapped cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
