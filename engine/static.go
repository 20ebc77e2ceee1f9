package engine

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Spec describes a StaticError.
type Spec struct {
	Domain       string
	URL          string
	Description  string
	Code         int
	Cancellation bool
}

// StaticPlatformError is a PlatformError with a fixed cancellation flag.
type StaticPlatformError struct {
	Cancellation bool
}

// IsCancellation implements PlatformError.
func (p StaticPlatformError) IsCancellation() bool {
	return p.Cancellation
}

// StaticError is an in-memory Error with counted ownership.
//
// Its fields can be changed after construction so callers can observe
// which values a holder copied and which it reads through. It is safe for
// concurrent use.
type StaticError struct {
	mu       sync.RWMutex
	spec     Spec
	platform PlatformError
	refs     atomic.Int64
	logger   atomic.Pointer[zap.Logger]
}

// NewStaticError returns a StaticError with one reference held by the caller.
func NewStaticError(spec Spec) *StaticError {
	e := &StaticError{
		spec:     spec,
		platform: StaticPlatformError{Cancellation: spec.Cancellation},
	}
	e.refs.Store(1)
	e.logger.Store(zap.NewNop())
	return e
}

// WithLogger sets the logger that reports unbalanced releases and returns e.
// A nil logger restores the default no-op logger.
func (e *StaticError) WithLogger(l *zap.Logger) *StaticError {
	if l == nil {
		l = zap.NewNop()
	}
	e.logger.Store(l)
	return e
}

// Domain implements Error.
func (e *StaticError) Domain() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.spec.Domain
}

// FailingURL implements Error.
func (e *StaticError) FailingURL() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.spec.URL
}

// LocalizedDescription implements Error.
func (e *StaticError) LocalizedDescription() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.spec.Description
}

// ErrorCode implements Error.
func (e *StaticError) ErrorCode() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.spec.Code
}

// PlatformError implements Error.
func (e *StaticError) PlatformError() PlatformError {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.platform
}

// Spec returns the current field values.
func (e *StaticError) Spec() Spec {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.spec
}

// Update replaces the field values, including the platform error.
func (e *StaticError) Update(spec Spec) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spec = spec
	e.platform = StaticPlatformError{Cancellation: spec.Cancellation}
}

// SetPlatformError replaces the platform error. A nil value is allowed.
func (e *StaticError) SetPlatformError(p PlatformError) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.platform = p
}

// Retain implements Retainer.
func (e *StaticError) Retain() {
	e.refs.Add(1)
}

// Release implements Retainer. A release with no outstanding reference
// leaves the count at zero and is logged.
func (e *StaticError) Release() {
	for {
		refs := e.refs.Load()
		if refs <= 0 {
			e.logger.Load().Error("engine error released more times than retained",
				zap.String("domain", e.Domain()),
			)
			return
		}
		if e.refs.CompareAndSwap(refs, refs-1) {
			return
		}
	}
}

// RefCount returns the number of outstanding references.
func (e *StaticError) RefCount() int64 {
	return e.refs.Load()
}
