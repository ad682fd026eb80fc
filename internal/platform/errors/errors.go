package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoCredential = errors.New("no stored credential")
	ErrUnauthorized = errors.New("unauthorized")
	ErrServer       = errors.New("server error")
)
