package services

import (
	"errors"
)

// Sentinel errors returned by the service layer. Handlers translate
// them to HTTP statuses; everything else is a server error.
var (
	// ErrNotFound covers both a missing row and a row owned by another
	// user. The two cases are indistinguishable on purpose so the API
	// never leaks whether someone else's resource exists.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned for any login failure: unknown
	// email, wrong password or blank password. Deliberately generic.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailRequired is returned when registering without an email
	ErrEmailRequired = errors.New("email is required")

	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidPrice is returned when a recipe price does not fit the
	// numeric(5,2) column
	ErrInvalidPrice = errors.New("price must have at most 5 digits with 2 decimal places")
)
