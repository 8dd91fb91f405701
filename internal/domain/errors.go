package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP
// statuses; anything else is treated as an internal failure.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrMalformedItems       = errors.New("malformed items payload")
	ErrNoItems              = errors.New("quotation needs at least one item")
	ErrItemNameRequired     = errors.New("every item needs a name")
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrDuplicate            = errors.New("duplicate resource")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email is already registered")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
)
