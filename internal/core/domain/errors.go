package domain

import "errors"

var (
	// ErrNoSession means no token is stored; pages redirect to the login form.
	ErrNoSession = errors.New("no active session")
	// ErrUnauthorized means the API rejected the token, even after a refresh.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden guards admin-only operations.
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrNotFound           = errors.New("record not found")
	// ErrNotSupported is returned for operations a resource does not offer,
	// such as deleting anything but a port.
	ErrNotSupported       = errors.New("operation not supported for this resource")
	ErrAlreadyInitialized = errors.New("view already initialized")
	ErrStorageKeyNotFound = errors.New("storage key not found")
)
