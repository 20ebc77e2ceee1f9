package ewk

import (
	"reflect"

	"github.com/jmgilman/go/ewk/engine"
	"github.com/jmgilman/go/ewk/errors"
)

// Error is a handle on an engine error. The nil *Error is the invalid handle.
type Error struct {
	wrapped     engine.Error
	url         string
	description string
}

// NewError returns a handle holding a reference to engineErr.
// It returns nil if engineErr is nil.
func NewError(engineErr engine.Error) *Error {
	if isNil(engineErr) {
		critical("NewError", "engine error is nil")
		return nil
	}

	if r, ok := engineErr.(engine.Retainer); ok {
		r.Retain()
	}

	return &Error{
		wrapped:     engineErr,
		url:         engineErr.FailingURL(),
		description: engineErr.LocalizedDescription(),
	}
}

// Free drops the handle's reference to the engine error. The handle must
// not be used afterwards; if it is, every method returns its sentinel.
func (e *Error) Free() {
	if e == nil {
		critical("Free", "error handle is nil")
		return
	}
	if e.wrapped == nil {
		critical("Free", "error handle already freed")
		return
	}

	wrapped := e.wrapped
	e.wrapped = nil
	e.url = ""
	e.description = ""

	if r, ok := wrapped.(engine.Retainer); ok {
		r.Release()
	}
}

// Type classifies the engine error by its domain.
// Returns TypeNone for an invalid handle.
func (e *Error) Type() ErrorType {
	wrapped, ok := e.engineError("Type")
	if !ok {
		return TypeNone
	}
	return TypeForDomain(wrapped.Domain())
}

// URL returns the failing URL copied when the handle was created.
func (e *Error) URL() string {
	if e == nil {
		critical("URL", "error handle is nil")
		return ""
	}
	return e.url
}

// Description returns the localized description copied when the handle
// was created.
func (e *Error) Description() string {
	if e == nil {
		critical("Description", "error handle is nil")
		return ""
	}
	return e.description
}

// Code returns the engine error code. Returns 0 for an invalid handle.
func (e *Error) Code() int {
	wrapped, ok := e.engineError("Code")
	if !ok {
		return 0
	}
	return wrapped.ErrorCode()
}

// IsCancellation reports whether the engine's platform error is a
// cancellation. Returns false for an invalid handle.
func (e *Error) IsCancellation() bool {
	wrapped, ok := e.engineError("IsCancellation")
	if !ok {
		return false
	}
	platform := wrapped.PlatformError()
	if isNil(platform) {
		return false
	}
	return platform.IsCancellation()
}

// Err converts the handle to an errors.Error with code
// errors.CodeEngineFailure. Returns nil for an invalid handle.
func (e *Error) Err() error {
	wrapped, ok := e.engineError("Err")
	if !ok {
		return nil
	}

	err := errors.New(errors.CodeEngineFailure, e.description)
	return errors.WithContextMap(err, map[string]interface{}{
		"type":         TypeForDomain(wrapped.Domain()).String(),
		"domain":       wrapped.Domain(),
		"url":          e.url,
		"engine_code":  wrapped.ErrorCode(),
		"cancellation": e.IsCancellation(),
	})
}

// engineError returns the wrapped engine error, logging on behalf of op
// when the handle is invalid.
func (e *Error) engineError(op string) (engine.Error, bool) {
	if e == nil {
		critical(op, "error handle is nil")
		return nil, false
	}
	if e.wrapped == nil {
		critical(op, "engine error is nil")
		return nil, false
	}
	return e.wrapped, true
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
