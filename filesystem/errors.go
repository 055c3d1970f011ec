package filesystem

import (
	"errors"
	"strings"
)

var (
	ErrUnreadable  = errors.New("filesystem: directory unreadable")
	ErrBadMetadata = errors.New("filesystem: bad metadata")
	ErrInvalidPath = errors.New("filesystem: path is not valid text")
)

// Error describes a failed step on one or more paths. Kind is one of the
// package level sentinel errors (of this package or of a caller) and Err is
// the underlying cause, if any. Both are reachable through errors.Is and
// errors.As.
type Error struct {
	Kind  error
	Op    string
	Paths []Path
	Err   error
}

func NewError(kind error, op string, err error, paths ...Path) *Error {
	return &Error{Kind: kind, Op: op, Paths: paths, Err: err}
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Kind.Error())

	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}

	for i, p := range e.Paths {
		if i == 0 {
			b.WriteString(" '")
		} else {
			b.WriteString(" -> '")
		}

		b.WriteString(p.String())
		b.WriteString("'")
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}
