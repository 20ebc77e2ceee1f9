package ewk

// Snapshot is the flat, serializable view of a handle.
type Snapshot struct {
	Type         ErrorType `json:"type" yaml:"type"`
	URL          string    `json:"url" yaml:"url"`
	Code         int       `json:"code" yaml:"code"`
	Description  string    `json:"description" yaml:"description"`
	Cancellation bool      `json:"cancellation" yaml:"cancellation"`
}

// Snapshot reads every accessor once. An invalid handle yields the
// sentinel of each field.
func (e *Error) Snapshot() Snapshot {
	return Snapshot{
		Type:         e.Type(),
		URL:          e.URL(),
		Code:         e.Code(),
		Description:  e.Description(),
		Cancellation: e.IsCancellation(),
	}
}
