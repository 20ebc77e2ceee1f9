package errors

import "fmt"

// Wrap wraps err with a code and message while preserving it for
// errors.Is and errors.As. Returns nil if err is nil.
//
// Example:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to read fixture")
//	}
func Wrap(err error, code Code, message string) Error {
	if err == nil {
		return nil
	}

	return &structuredError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps err with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code Code, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}
