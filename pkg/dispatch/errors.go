package dispatch

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Machine-readable error codes carried in the uniform error envelope.
const (
	CodeUnknownOperation = "UNKNOWN_OPERATION"
	CodeValidation       = "VALIDATION_ERROR"
	CodeRateLimited      = "RATE_LIMITED"
	CodeUpstream         = "UPSTREAM_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
	CodeTimeout          = "TIMEOUT"
)

// FieldError describes one payload field violation.
type FieldError struct {
	// Field is the offending field name.
	Field string `json:"field"`

	// Message is the human-readable violation (e.g. "field required").
	Message string `json:"message"`

	// Type is the machine-readable violation kind (e.g. "missing").
	Type string `json:"type"`
}

// DuplicateOperationError reports a second registration under an existing
// operation name. This is a startup wiring bug, never a request error.
type DuplicateOperationError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateOperationError) Error() string {
	return fmt.Sprintf("operation %q is already registered", e.Name)
}

// UnknownOperationError reports a dispatch against an unregistered
// operation name. It carries the valid names for the client response.
type UnknownOperationError struct {
	Name            string
	ValidOperations []string
}

// Error implements the error interface.
func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operationType %q (valid: %s)",
		e.Name, strings.Join(e.ValidOperations, ", "))
}

// Code returns the envelope error code.
func (e *UnknownOperationError) Code() string { return CodeUnknownOperation }

// Details returns the structured error payload.
func (e *UnknownOperationError) Details() map[string]any {
	return map[string]any{"valid_operations": e.ValidOperations}
}

// ValidationError reports payload validation failure. Fields lists every
// violation found, not just the first: validation checks all fields before
// reporting.
type ValidationError struct {
	Operation string
	Fields    []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("payload validation failed for %q (%d field errors)",
		e.Operation, len(e.Fields))
}

// Code returns the envelope error code.
func (e *ValidationError) Code() string { return CodeValidation }

// Details returns the structured error payload.
func (e *ValidationError) Details() map[string]any {
	return map[string]any{"validation_errors": e.Fields}
}

// RateLimitedError reports denial by the process-wide request budget.
type RateLimitedError struct {
	// RetryAfter is the suggested wait before resubmitting.
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// Code returns the envelope error code.
func (e *RateLimitedError) Code() string { return CodeRateLimited }

// Details returns the structured error payload.
func (e *RateLimitedError) Details() map[string]any {
	return map[string]any{"retry_after_seconds": e.RetryAfterSeconds()}
}

// RetryAfterSeconds rounds the hint up to whole seconds, minimum 1, the
// granularity a Retry-After header can carry.
func (e *RateLimitedError) RetryAfterSeconds() int {
	secs := int(math.Ceil(e.RetryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// UpstreamError reports a terminal provider failure: retry exhaustion or a
// non-retryable upstream status.
type UpstreamError struct {
	// StatusCode is the upstream HTTP-like status (0 when the failure
	// never produced a response).
	StatusCode int

	// Message describes the upstream failure.
	Message string

	// Attempts is how many provider calls were made before giving up.
	Attempts int

	// Cause is the final provider error.
	Cause error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream failed with status %d after %d attempts: %s",
			e.StatusCode, e.Attempts, e.Message)
	}
	return fmt.Sprintf("upstream failed after %d attempts: %s", e.Attempts, e.Message)
}

// Unwrap returns the underlying provider error.
func (e *UpstreamError) Unwrap() error { return e.Cause }

// Code returns the envelope error code.
func (e *UpstreamError) Code() string { return CodeUpstream }

// Details returns the structured error payload.
func (e *UpstreamError) Details() map[string]any {
	details := map[string]any{
		"message":  e.Message,
		"attempts": e.Attempts,
	}
	if e.StatusCode > 0 {
		details["status"] = e.StatusCode
	}
	return details
}

// NormalizationError reports a provider response that does not fit the
// operation's response schema. This is a contract mismatch between proxy
// and provider, always fatal and never retried.
type NormalizationError struct {
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *NormalizationError) Error() string {
	return fmt.Sprintf("response normalization failed for %q: %v", e.Operation, e.Cause)
}

// Unwrap returns the underlying error.
func (e *NormalizationError) Unwrap() error { return e.Cause }

// Code returns the envelope error code.
func (e *NormalizationError) Code() string { return CodeInternal }

// Details returns the structured error payload. The cause stays internal;
// clients only learn the response format was unexpected.
func (e *NormalizationError) Details() map[string]any {
	return map[string]any{"message": "provider response format unexpected"}
}

// TimeoutError reports that the caller's deadline elapsed mid-dispatch.
// In-flight backoff sleeps are abandoned; partially sent provider calls
// are not retried.
type TimeoutError struct {
	Cause error
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("dispatch cancelled: %v", e.Cause)
}

// Unwrap returns the underlying context error.
func (e *TimeoutError) Unwrap() error { return e.Cause }

// Code returns the envelope error code.
func (e *TimeoutError) Code() string { return CodeTimeout }

// Details returns the structured error payload.
func (e *TimeoutError) Details() map[string]any {
	return map[string]any{"message": e.Cause.Error()}
}
