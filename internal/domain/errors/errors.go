package errors

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidRole        = errors.New("invalid role")
)
