package domain

import "errors"

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotFound           = errors.New("record not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUploadFailed       = errors.New("file upload failed")
)

// StoreError is a failure reported by the relational store. Its message is
// surfaced to the caller verbatim.
type StoreError struct {
	// Code is the SQLSTATE reported by the store, empty for driver-level failures.
	Code    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
