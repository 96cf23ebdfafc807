package entity

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrUnexpectedStatus   = errors.New("unexpected status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmptyCart          = errors.New("please select at least one item")
	ErrNoSession          = errors.New("no active table session")
	ErrInvalidTransition  = errors.New("invalid transition")
)

// APIError is returned by every backend call that did not complete with a 2xx status.
// Op names the failed operation, Message carries the backend's explanation verbatim.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return e.Op + ": " + e.Message
	case e.Err != nil:
		return e.Op + ": " + e.Err.Error()
	default:
		return e.Op
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// StatusError maps a backend HTTP status onto the sentinel errors above.
func StatusError(code int) error {
	switch code {
	case 400, 422:
		return ErrInvalidArgument
	case 401:
		return ErrUnauthenticated
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	default:
		return ErrUnexpectedStatus
	}
}
