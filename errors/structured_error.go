package errors

import "fmt"

// structuredError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type structuredError struct {
	code    Code
	message string
	context map[string]interface{}
	cause   error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *structuredError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *structuredError) Code() Code {
	return e.code
}

// Message returns the error message.
func (e *structuredError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none is attached.
func (e *structuredError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *structuredError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}

// fromError returns err as an Error, converting foreign errors to CodeUnknown.
func fromError(err error) Error {
	var structured Error
	if As(err, &structured) {
		return structured
	}
	return &structuredError{
		code:    CodeUnknown,
		message: err.Error(),
		cause:   err,
	}
}
