// Package engine defines the contract ewk expects from the browser engine's
// error objects, plus an in-memory implementation used by fixtures and tests.
package engine

// Error domains reported by the engine. Domain strings are compared
// byte for byte.
const (
	DomainNetwork  = "WebKitNetworkError"
	DomainPolicy   = "WebKitPolicyError"
	DomainPlugin   = "WebKitPluginError"
	DomainDownload = "WebKitDownloadError"
	DomainPrint    = "WebKitPrintError"
)

// Error is an engine-provided error object.
//
// Every string accessor returns a fresh copy; callers may keep the value
// after the error changes or goes away.
type Error interface {
	// Domain names the engine subsystem that produced the error.
	Domain() string

	// FailingURL returns the URL being loaded when the error occurred.
	// It may be empty.
	FailingURL() string

	// LocalizedDescription returns a user-presentable description.
	LocalizedDescription() string

	// ErrorCode returns the domain-specific error code.
	ErrorCode() int

	// PlatformError returns the lower-level error behind this one.
	// It may be nil.
	PlatformError() PlatformError
}

// PlatformError is the engine-internal error representation.
type PlatformError interface {
	// IsCancellation reports whether the failure was a user or system
	// cancellation rather than a real error.
	IsCancellation() bool
}

// Retainer is implemented by engine errors with counted ownership.
// Holders call Retain when they take a reference and Release exactly once
// when they drop it.
type Retainer interface {
	Retain()
	Release()
}
