package client

import "errors"

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrServer      = errors.New("server error")
)
