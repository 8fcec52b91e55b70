package entity

import "errors"

// Domain sentinel errors. Handlers translate these to HTTP status codes;
// everything else surfaces as a 500 with the error detail in the body.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidStatus = errors.New("invalid status")
	ErrAlreadyInCart = errors.New("class already in cart")
	ErrValidation    = errors.New("validation failed")
)
