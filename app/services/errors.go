package services

import "errors"

var (
	// ErrUnauthenticated is returned when an anonymous caller attempts a
	// write operation. Checked before any authorship check.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when an authenticated caller is not the
	// author of the resource being mutated.
	ErrForbidden = errors.New("not the author")

	// ErrInvalidCredentials is returned on a failed login so the caller
	// cannot distinguish a wrong password from an unknown handle.
	ErrInvalidCredentials = errors.New("invalid handle or password")

	// ErrWeakPassword is returned at signup for passwords shorter than
	// MinPasswordLength. It is an input failure, not a server fault.
	ErrWeakPassword = errors.New("password too short")
)
