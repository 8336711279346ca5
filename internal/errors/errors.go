// Package errors defines domain error values shared across services.
package errors

import "fmt"

// DomainError is a coded error surfaced to the route layer, which maps it
// to a client-facing response.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a DomainError with a formatted message.
func NewDomainError(code, format string, args ...interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
