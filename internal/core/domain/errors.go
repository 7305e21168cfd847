package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrExpenseNotFound = errors.New("expense not found")

// ValidationError is a client-input failure. Its message is rendered verbatim
// in the error envelope and always maps to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrNameRequired  = &ValidationError{Message: "Name is required"}
	ErrMissingFields = &ValidationError{Message: "Missing required fields"}
	ErrInvalidUserID = &ValidationError{Message: "Invalid userId"}

	// ErrUnknownUser signals a failed referential check while creating an
	// expense. Unlike ErrUserNotFound it is a validation failure (400): the
	// missing user is part of the caller's payload, not the resource being
	// addressed. Updates signal ErrUserNotFound (404) for the same condition.
	ErrUnknownUser = &ValidationError{Message: "User not found"}
)

// ErrEmptyField reports an update that would blank out a required field.
func ErrEmptyField(field string) *ValidationError {
	return &ValidationError{Message: field + " cannot be empty"}
}
