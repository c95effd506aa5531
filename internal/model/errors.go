package model

import "errors"

var (
	// ErrInvalid wraps every validation failure, handlers map it to 400.
	ErrInvalid = errors.New("invalid input")
	// ErrForbidden is returned when a record exists but belongs to another user.
	ErrForbidden = errors.New("forbidden")
)
