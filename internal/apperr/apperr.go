// Package apperr defines the tagged domain error type. Callers branch on
// the error kind; messages are stable strings surfaced to API clients.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindNotFound
	KindAlreadyExists
	KindInUse
	KindInvalidReference
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInUse:
		return "in_use"
	case KindInvalidReference:
		return "invalid_reference"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a domain error with a kind and a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func AlreadyExists(message string) *Error {
	return New(KindAlreadyExists, message)
}

func InUse(message string) *Error {
	return New(KindInUse, message)
}

func InvalidReference(message string) *Error {
	return New(KindInvalidReference, message)
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

// KindOf returns the kind of err, or KindUnknown for non-domain errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
