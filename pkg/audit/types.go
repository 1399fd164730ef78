package audit

import (
	"context"
	"time"
)

// Event is one audit trail entry: a single pipeline stage transition for a
// dispatched request.
type Event struct {
	// ID is a UUID v4 assigned at recording time.
	ID string `json:"id"`

	// CorrelationID groups the events of one request.
	CorrelationID string `json:"correlation_id"`

	// Stage is the pipeline stage ("validation", "provider_call",
	// "provider_response", "response_normalization").
	Stage string `json:"stage"`

	// Operation is the operation name, when known at this stage.
	Operation string `json:"operation"`

	// Outcome is the stage outcome ("pass", "fail", "success", "error",
	// "cancelled"), empty for stage-entry events.
	Outcome string `json:"outcome"`

	// Fields carries the remaining structured stage data.
	Fields map[string]any `json:"fields"`

	// RecordedAt is when the event was recorded.
	RecordedAt time.Time `json:"recorded_at"`
}

// Query defines filter parameters for reading back audit events.
type Query struct {
	// StartTime and EndTime bound RecordedAt, inclusive.
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// CorrelationID filters to one request's trail.
	CorrelationID string `json:"correlation_id,omitempty"`

	// Stage filters by pipeline stage.
	Stage string `json:"stage,omitempty"`

	// Operation filters by operation name.
	Operation string `json:"operation,omitempty"`

	// Outcome filters by stage outcome.
	Outcome string `json:"outcome,omitempty"`

	// Limit and Offset paginate; Limit 0 means no limit.
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// Storage is the contract for audit storage backends.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Store persists one event.
	Store(ctx context.Context, event *Event) error

	// Query retrieves events matching the filters, newest first.
	Query(ctx context.Context, query *Query) ([]*Event, error)

	// Count returns the number of events matching the filters.
	Count(ctx context.Context, query *Query) (int64, error)

	// Delete removes events matching the filters and returns how many
	// were removed. Used by retention pruning.
	Delete(ctx context.Context, query *Query) (int64, error)

	// Close releases backend resources.
	Close() error
}
