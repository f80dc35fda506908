package specs

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure raised while handling a message.
type ErrorKind uint8

const (
	// ErrorKindParser marks a malformed request, start line, protocol, header or query token.
	ErrorKindParser ErrorKind = iota + 1
	// ErrorKindInvalidMethod marks an unrecognized method token.
	ErrorKindInvalidMethod
	// ErrorKindInvalidCode marks an unrecognized numeric status code.
	ErrorKindInvalidCode
)

func (kind ErrorKind) String() string {
	switch kind {
	case ErrorKindParser:
		return "parser"
	case ErrorKindInvalidMethod:
		return "method"
	case ErrorKindInvalidCode:
		return "code"
	}
	return "unknown"
}

// NewError creates an Error of the given kind with a formatted message.
func NewError(kind ErrorKind, format string, a ...any) Error {
	return Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
	}
}

// Error is the single failure value returned by parsing operations.
// It is comparable, so two errors with the same kind and message are equal.
type Error struct {
	Kind    ErrorKind
	Message string
}

// String formats the Error including its kind.
func (e Error) String() string {
	return fmt.Sprintf("rawhttp/%s: %s", e.Kind, e.Message)
}

// Error implements the error interface for Error.
func (e Error) Error() string {
	return e.String()
}

// Is reports whether target is the same Error. A target without a message
// matches every Error of its kind.
func (e Error) Is(target error) bool {
	var other Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind &&
			(other.Message == "" || e.Message == other.Message)
	}
	return false
}

// KindError returns a message-less Error that matches every Error of kind via errors.Is.
func KindError(kind ErrorKind) Error {
	return Error{Kind: kind}
}

// KindOf returns the kind of err when it is an Error, or zero otherwise.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
