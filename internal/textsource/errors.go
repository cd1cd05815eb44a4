package textsource

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Kind classifies why an input could not be turned into text.
type Kind int

const (
	KindIO Kind = iota
	KindEncoding
	KindFormat
	KindTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io error"
	case KindEncoding:
		return "invalid encoding"
	case KindFormat:
		return "unreadable format"
	case KindTooLarge:
		return "input too large"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is. Matching compares the Kind only.
var (
	ErrIO       = &Error{Kind: KindIO}
	ErrEncoding = &Error{Kind: KindEncoding}
	ErrFormat   = &Error{Kind: KindFormat}
	ErrTooLarge = &Error{Kind: KindTooLarge}
)

// Error reports a failure to load an input.
type Error struct {
	Kind Kind
	Name string
	Err  error
}

func (e *Error) Error() string {
	msg := "textsource: " + e.Kind.String()
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// newError builds an *Error for name and records the caller's stack.
func newError(kind Kind, name string, err error) error {
	return goerrors.Wrap(&Error{Kind: kind, Name: name, Err: err}, 1)
}

func newErrorf(kind Kind, name string, format string, args ...any) error {
	return newError(kind, name, fmt.Errorf(format, args...))
}

// StackTrace returns the stack recorded when err was created, or "" when
// err carries none.
func StackTrace(err error) string {
	var traced *goerrors.Error
	if errors.As(err, &traced) {
		return string(traced.Stack())
	}
	return ""
}
