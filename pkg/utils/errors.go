package utils

import "errors"

var (
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest marks missing or empty required input, detected
	// before any store call.
	ErrBadRequest = errors.New("bad request")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
