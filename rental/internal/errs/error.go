package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("dates are already booked")
	ErrDuplicate          = errors.New("email already registered")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageUnavailable = errors.New("image storage is not configured")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
