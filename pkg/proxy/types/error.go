package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error envelope. Every error leaving the
// proxy has this shape, regardless of which pipeline stage produced it.
type ErrorResponse struct {
	// Error is the human-readable error message.
	Error string `json:"error"`

	// Code is the machine-readable error code.
	Code string `json:"code"`

	// Details carries code-specific structured data.
	Details map[string]any `json:"details,omitempty"`

	// RequestID is the correlation id of the failed request.
	RequestID string `json:"requestId"`
}

// WriteError writes an error envelope with the given HTTP status.
func WriteError(w http.ResponseWriter, status int, resp *ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteJSON writes a JSON body with the given HTTP status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
