package usecase

import "errors"

// Sentinel errors the adaptor layer maps to HTTP statuses with
// errors.Is. Services wrap them with context via fmt.Errorf and %w.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("service unavailable")
)
