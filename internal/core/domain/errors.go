package domain

import "errors"

// Error kinds. Every specific error below unwraps to exactly one of them,
// so callers can branch on the kind with errors.Is.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrValidation      = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
)

// User errors
var (
	ErrUserNotFound  = NewError(ErrNotFound, "user not found")
	ErrEmailTaken    = NewError(ErrConflict, "email already registered")
	ErrWrongPassword = NewError(ErrValidation, "wrong password")
)

// Booking errors
var (
	ErrBookingNotFound   = NewError(ErrNotFound, "booking not found")
	ErrCaretakerNotFound = NewError(ErrNotFound, "caretaker not found")
	ErrSlotConflict      = NewError(ErrConflict, "a booking already exists at this date and time")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NewError returns an error with its own message that matches kind under errors.Is
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}
