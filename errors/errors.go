package errors

// Error is the structured error returned by the fallible parts of ewk:
// fixture loading, configuration and handle conversion.
//
// Error values are immutable. They carry a Code for programmatic handling,
// a human-readable message, optional context metadata, and they remain
// compatible with errors.Is, errors.As and errors.Unwrap.
type Error interface {
	error

	// Code returns the code identifying the failure.
	Code() Code

	// Message returns the human-readable message without the cause.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}
