package utils

import "errors"

var (
	ErrValidation         = errors.New("missing or invalid fields")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrDatabaseError      = errors.New("database error")
)
