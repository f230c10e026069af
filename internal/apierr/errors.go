// Package apierr defines the structured errors and the result envelope
// returned across the intake submission boundary.
package apierr

import (
	"errors"
	"fmt"
)

// Error is a structured failure carrying a developer message and a
// separate message that is safe to show to end users.
type Error struct {
	Code        Code   `json:"code"`
	Message     string `json:"message"`
	UserMessage string `json:"userMessage"`
	Cause       error  `json:"-"`
}

// Option customizes an Error built by New
type Option func(*Error)

// WithMessage sets the developer-oriented message
func WithMessage(msg string) Option {
	return func(e *Error) { e.Message = msg }
}

// WithMessagef sets the developer-oriented message from a format string
func WithMessagef(format string, args ...interface{}) Option {
	return func(e *Error) { e.Message = fmt.Sprintf(format, args...) }
}

// WithUserMessage overrides the default end-user message for the code
func WithUserMessage(msg string) Option {
	return func(e *Error) { e.UserMessage = msg }
}

// WithCause attaches the underlying fault
func WithCause(err error) Option {
	return func(e *Error) { e.Cause = err }
}

// New builds an Error. The message defaults to the user message.
func New(code Code, opts ...Option) *Error {
	if !code.Valid() {
		code = CodeUnknown
	}
	e := &Error{Code: code}
	for _, opt := range opts {
		opt(e)
	}
	if e.UserMessage == "" {
		e.UserMessage = defaultUserMessage(code)
	}
	if e.Message == "" {
		e.Message = e.UserMessage
	}
	return e
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// As extracts an *Error from an error chain
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr, true
	}
	return nil, false
}

// CodeOf returns the code of err, or CodeUnknown for unstructured errors
func CodeOf(err error) Code {
	if apiErr, ok := As(err); ok {
		return apiErr.Code
	}
	return CodeUnknown
}

// From converts any recovered value into an *Error. Structured errors pass
// through unchanged; everything else becomes UNKNOWN with a generic user
// message and the original value as cause.
func From(v interface{}) *Error {
	switch x := v.(type) {
	case nil:
		return New(CodeUnknown, WithMessage("unknown error"))
	case *Error:
		if x == nil {
			return New(CodeUnknown, WithMessage("unknown error"))
		}
		return x
	case error:
		if apiErr, ok := As(x); ok {
			return apiErr
		}
		return New(CodeUnknown, WithMessage(x.Error()), WithCause(x))
	default:
		msg := fmt.Sprint(x)
		return New(CodeUnknown, WithMessage(msg), WithCause(fmt.Errorf("%s", msg)))
	}
}

// FromBackend translates a store error code into an application error.
// The raw backend message is kept for developers only.
func FromBackend(backendCode, message string, cause error) *Error {
	if message == "" {
		message = "Unknown database error"
	}
	switch backendCode {
	case BackendConnection:
		return New(CodeNetworkError, WithMessage(message), WithCause(cause))
	case BackendServiceUnavailable:
		return New(CodeServiceUnavailable, WithMessage(message), WithCause(cause))
	case BackendUniqueViolation:
		return New(CodeDBUniqueViolation, WithMessage(message), WithCause(cause))
	case BackendForeignKeyViolation:
		return New(CodeDBForeignKeyViolation, WithMessage(message), WithCause(cause))
	default:
		return New(CodeDBInsertFailed, WithMessage(message), WithCause(cause))
	}
}
