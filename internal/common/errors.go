// Package common defines sentinel errors and constants shared by the
// directory server and client. Callers match the errors with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorValidation = errors.New("validation error")
)
