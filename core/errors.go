package core

import (
	"context"
	"errors"
)

// Kind classifies a failure for reporting purposes.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation covers missing or empty required input.
	KindValidation
	// KindNetwork covers transport failures and non-2xx responses.
	KindNetwork
	// KindContent means the page loaded but had no usable text.
	KindContent
	// KindClipboard means the platform rejected a clipboard write.
	KindClipboard
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindContent:
		return "content"
	case KindClipboard:
		return "clipboard"
	default:
		return "unknown"
	}
}

// Classified is implemented by errors that carry a Kind and a short
// user-facing message.
type Classified interface {
	error
	Kind() Kind
	UserMessage() string
}

// Error is a classified sentinel error. Packages declare their sentinels
// with NewError and wrap them with fmt.Errorf("...: %w", ErrX).
type Error struct {
	kind Kind
	msg  string
}

// NewError creates a classified sentinel error.
func NewError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string       { return e.msg }
func (e *Error) Kind() Kind          { return e.kind }
func (e *Error) UserMessage() string { return e.msg }

const unexpectedMessage = "An unexpected error occurred."

// Classify returns the Kind of err, or KindUnknown if it carries none.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var c Classified
	if errors.As(err, &c) {
		return c.Kind()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindNetwork
	}
	return KindUnknown
}

// UserMessage converts err into the short message shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var c Classified
	if errors.As(err, &c) {
		return c.UserMessage()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Failed to fetch the URL. The request timed out."
	}
	return unexpectedMessage
}
