package types

// ExecuteRequest is the body of POST /proxy/execute. Every operation goes
// through this single envelope; the payload contract depends on the
// operation type.
type ExecuteRequest struct {
	// OperationType names the operation to dispatch.
	OperationType string `json:"operationType"`

	// Payload carries the operation's input fields. May be omitted for
	// operations without inputs.
	Payload map[string]any `json:"payload"`

	// RequestID optionally supplies the correlation token in the body.
	// An X-Request-ID header takes precedence; when both are absent one
	// is generated.
	RequestID string `json:"requestId"`
}
