package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so handlers can map it to a response
// without inspecting error strings.
type Kind int

const (
	KindValidation Kind = iota
	KindUpstream
	KindPublish
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	case KindPublish:
		return "publish"
	case KindStore:
		return "store"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf reports the classification of err, or false if err carries none.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
