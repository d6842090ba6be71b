package apperr

import (
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindConflict   Kind = "CONFLICT"
	KindNotFound   Kind = "NOT_FOUND"
	KindStorage    Kind = "STORAGE"
)

// Error carries an error kind, a caller-facing message and the HTTP
// status it maps to.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation reports a missing or malformed field.
func NewValidation(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewConflict reports a duplicate email. Signup surfaces it as 409;
// the form handlers override Status to 400.
func NewConflict(message string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: message,
		Status:  http.StatusConflict,
	}
}

// NewNotFound reports an absent delete/update target. Surfaced as 400
// with an explanatory message, not 404.
func NewNotFound(message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewStorage wraps a database failure. The driver error text is kept
// in the message.
func NewStorage(message string, err error) *Error {
	return &Error{
		Kind:    KindStorage,
		Message: fmt.Sprintf("%s: %v", message, err),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
