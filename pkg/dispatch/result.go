package dispatch

// Result is the normalized outcome of a successful dispatch.
// It is produced once per request and immutable afterwards.
type Result struct {
	// CorrelationID is the opaque request token, echoed back unchanged.
	CorrelationID string `json:"requestId"`

	// OperationType names the executed operation.
	OperationType string `json:"operationType"`

	// Data is the schema-shaped normalized response value.
	Data any `json:"data"`
}

// FieldSpec documents one payload field of an operation for introspection.
type FieldSpec struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// OperationInfo describes one registered operation.
type OperationInfo struct {
	Name   string      `json:"name"`
	Fields []FieldSpec `json:"fields"`
}
