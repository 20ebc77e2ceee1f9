package errors

// WithContext returns a copy of err with one more context field.
// Existing fields are preserved; a field with the same key is replaced.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidFixture, "entry has no name")
//	err = errors.WithContext(err, "index", 3)
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap returns a copy of err with the given fields merged into
// its context. New fields override existing ones with the same key.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	base := fromError(err)
	merged := make(map[string]interface{}, len(ctx))
	for k, v := range base.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &structuredError{
		code:    base.Code(),
		message: base.Message(),
		context: merged,
		cause:   base.Unwrap(),
	}
}
