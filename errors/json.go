package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of an error as printed by the CLI.
// The wrapped chain is excluded.
type ErrorResponse struct {
	// Code is the error code.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Context contains optional metadata. Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse. Returns nil if err is nil.
//
// Errors that carry no Error in their chain are reported with CodeUnknown
// and their Error() text as the message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	response := &ErrorResponse{
		Code:    string(GetCode(err)),
		Message: err.Error(),
	}

	var structured Error
	if As(err, &structured) {
		response.Message = structured.Message()
		response.Context = structured.Context()
	}

	return response
}

// MarshalJSON implements json.Marshaler so an Error can be embedded in
// encoded output directly.
func (e *structuredError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:    string(e.code),
		Message: e.message,
		Context: e.context,
	})
	if err != nil {
		return nil, &structuredError{
			code:    CodeInternal,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
