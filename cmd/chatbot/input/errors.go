package input

import (
	"errors"

	"github.com/tamasbrandstadter/pixell-chatbot/cmd/chatbot/account"
)

var (
	ErrInvalidFormat     = errors.New("invalid format")
	ErrAccountNotFound   = account.ErrAccountNotFound
	ErrNonPositiveAmount = account.ErrNonPositiveAmount
	ErrInvalidSelection  = errors.New("invalid selection")
)

// Error is a rejected line of input. Message is what the user gets to see,
// Kind is one of the Err* values above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func reject(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}
