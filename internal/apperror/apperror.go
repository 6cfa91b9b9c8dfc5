// Package apperror holds the error taxonomy shared by the HTTP pipeline and
// the persistence layer. Classification is done with errors.As.
package apperror

import "fmt"

// ParseError reports a request body that could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "malformed request body"
	}
	return "malformed request body: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a missing or invalid input field.
// Message is safe to return to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// StorageError wraps any failure raised by a persistence gateway.
// Op names the gateway operation, e.g. "todos.list_all".
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError, or returns nil when err is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
