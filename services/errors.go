package services

import "errors"

// Error kinds returned by the domain services. Controllers translate each into
// a fixed HTTP status and the shared error envelope.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnsupportedImage   = errors.New("image type not allowed")
	ErrUpstream           = errors.New("upstream service failure")
)
