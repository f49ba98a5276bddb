package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these onto HTTP
// status codes; everything else surfaces as a 500.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate resource")
	ErrUnauthorized = errors.New("not authenticated")
	ErrForbidden    = errors.New("access denied")
)
