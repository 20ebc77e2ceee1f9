// Package errors provides structured errors for the ewk module.
// It extends Go's standard error handling with string codes, context
// metadata and JSON serialization.
package errors

// Code identifies a failure condition.
// Codes are string-based for debuggability and natural JSON serialization.
type Code string

const (
	// Input errors.

	// CodeNotFound indicates a requested file or entry does not exist.
	CodeNotFound Code = "NOT_FOUND"

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration value is not accepted.
	CodeInvalidConfig Code = "INVALID_CONFIGURATION"

	// CodeInvalidFixture indicates an engine error fixture could not be decoded.
	CodeInvalidFixture Code = "INVALID_FIXTURE"

	// Handle errors.

	// CodeInvalidHandle indicates a nil or already freed error handle.
	CodeInvalidHandle Code = "INVALID_HANDLE"

	// CodeEngineFailure is carried by errors converted from a live engine error.
	CodeEngineFailure Code = "ENGINE_FAILURE"

	// System errors.

	// CodeIO indicates reading or writing an external resource failed.
	CodeIO Code = "IO_ERROR"

	// CodeInternal indicates an internal error occurred.
	CodeInternal Code = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown Code = "UNKNOWN"
)
