// Package apperr defines the error taxonomy shared by all services.
// Provider-specific error shapes are translated into these kinds once,
// at the provider adapter, so handlers only ever see tagged errors.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for status-code mapping.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindSignature  Kind = "signature"
	KindUpstream   Kind = "upstream"
	KindInternal   Kind = "internal"
)

// Error is a tagged service error. Code and DeclineCode carry the
// provider's machine-readable codes through for upstream failures.
type Error struct {
	Kind        Kind
	Message     string
	Code        string
	DeclineCode string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return newError(KindValidation, format, args...)
}

func NotFound(format string, args ...interface{}) *Error {
	return newError(KindNotFound, format, args...)
}

func Signature(format string, args ...interface{}) *Error {
	return newError(KindSignature, format, args...)
}

func Upstream(format string, args ...interface{}) *Error {
	return newError(KindUpstream, format, args...)
}

func Internal(format string, args ...interface{}) *Error {
	return newError(KindInternal, format, args...)
}

// WithCode attaches the provider's error code.
func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}

// WithDeclineCode attaches the card network's decline code.
func (e *Error) WithDeclineCode(code string) *Error {
	e.DeclineCode = code
	return e
}

// KindOf reports the kind of err, or KindInternal for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
