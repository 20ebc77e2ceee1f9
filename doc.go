// Package ewk exposes engine error objects to embedders through a small,
// nil-safe handle type.
//
// A handle is created from an engine.Error with NewError and released with
// Free. The failing URL and localized description are copied when the
// handle is created and never change afterwards; the type, code and
// cancellation flag are read from the engine error on every call.
//
//	h := ewk.NewError(engineErr)
//	defer h.Free()
//
//	if h.Type() == ewk.TypeNetwork && !h.IsCancellation() {
//	    log.Printf("load of %s failed: %s", h.URL(), h.Description())
//	}
//
// # Invalid handles
//
// Every method may be called on a nil *Error. Invalid input never panics
// and never returns an error: the method logs a diagnostic through the
// package logger (see SetLogger) and returns a sentinel value (TypeNone,
// an empty string, 0 or false). A sentinel cannot be told apart from a
// legitimately empty value; callers that need to know must check the
// handle themselves.
//
// # Concurrency
//
// Distinct handles are independent. A single handle has no internal
// locking and must not be used from several goroutines at once.
package ewk
