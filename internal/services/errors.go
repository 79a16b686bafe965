package services

import "errors"

var (
	// ErrValidation means required request fields are missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrPatientNotFound means the referenced patient does not exist.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrEmailTaken means the registration email is already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidLogin means the email or password did not match. The two
	// cases are deliberately indistinguishable.
	ErrInvalidLogin = errors.New("invalid email or password")
)
