package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNetwork    = errors.New("network error")
	ErrParse      = errors.New("parse error")
)

// Error carries one of the kinds above together with the underlying cause.
// errors.Is matches both the kind and anything in the cause chain.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func Validation(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

func Network(message string, cause error) error {
	return &Error{Kind: ErrNetwork, Message: message, Cause: cause}
}

func Parse(message string, cause error) error {
	return &Error{Kind: ErrParse, Message: message, Cause: cause}
}

// KindOf reports which of the known kinds err belongs to, or nil.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrNetwork, ErrParse} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
