package errors

import "fmt"

// New creates an Error with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidHandle, "error handle is nil")
func New(code Code, message string) Error {
	return &structuredError{
		code:    code,
		message: message,
	}
}

// Newf creates an Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidFixture, "entry %d has no name", i)
func Newf(code Code, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}
