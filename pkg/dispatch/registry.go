package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"sportsgate-hq/sportsgate/pkg/limits/ratelimit"
	"sportsgate-hq/sportsgate/pkg/providers"
	"sportsgate-hq/sportsgate/pkg/retry"
	"sportsgate-hq/sportsgate/pkg/telemetry/metrics"
)

// Audit stage names emitted during a dispatch.
const (
	StageValidation     = "validation"
	StageProviderCall   = "provider_call"
	StageProviderResult = "provider_response"
	StageNormalization  = "response_normalization"
)

// Validator checks an untyped payload against an operation's contract.
// It returns the validated typed payload, or the complete list of field
// violations - all fields are checked, not just the first failure.
type Validator func(payload map[string]any) (any, []FieldError)

// ProviderCall invokes the provider method bound to an operation with the
// validated payload and returns the raw provider-shaped result.
type ProviderCall func(ctx context.Context, validated any) (any, error)

// Normalizer converts a raw provider result into the operation's response
// schema. A failure indicates a proxy/provider contract mismatch.
type Normalizer func(raw any) (any, error)

// Descriptor binds one operation name to its validator, provider call, and
// normalizer. Descriptors are immutable after registration.
type Descriptor struct {
	Name      string
	Fields    []FieldSpec
	Validate  Validator
	Call      ProviderCall
	Normalize Normalizer
}

// AuditSink receives one structured event per pipeline stage transition.
// Implementations must be non-blocking and must never fail the pipeline;
// emission is fire-and-forget.
type AuditSink interface {
	Emit(stage, correlationID string, fields map[string]any)
}

// Registry is the decision mapper: it owns the operation descriptors for
// the process lifetime and orchestrates the dispatch pipeline.
//
// Register is called during startup wiring only. After wiring completes the
// registry is effectively read-only, so concurrent Dispatch calls perform
// lookups without locking.
type Registry struct {
	mu  sync.Mutex // guards ops during startup wiring
	ops map[string]*Descriptor

	limiter   *ratelimit.SlidingWindow
	engine    *retry.Engine
	retryable func(error) bool
	audit     AuditSink
	collector *metrics.Collector
	logger    *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithAudit wires an audit sink receiving per-stage events.
func WithAudit(sink AuditSink) Option {
	return func(r *Registry) { r.audit = sink }
}

// WithMetrics wires Prometheus instrumentation.
func WithMetrics(c *metrics.Collector) Option {
	return func(r *Registry) { r.collector = c }
}

// WithRetryClassifier overrides the default transient-error classification.
func WithRetryClassifier(retryable func(error) bool) Option {
	return func(r *Registry) { r.retryable = retryable }
}

// NewRegistry creates an empty registry using the given rate limiter and
// retry engine. The default retry classification is providers.IsTransient.
func NewRegistry(limiter *ratelimit.SlidingWindow, engine *retry.Engine, opts ...Option) *Registry {
	r := &Registry{
		ops:       make(map[string]*Descriptor),
		limiter:   limiter,
		engine:    engine,
		retryable: providers.IsTransient,
		logger:    slog.Default().With("component", "dispatch"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an operation descriptor during startup wiring.
// It fails with a DuplicateOperationError when the name is already taken.
func (r *Registry) Register(desc Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ops[desc.Name]; exists {
		return &DuplicateOperationError{Name: desc.Name}
	}
	r.ops[desc.Name] = &desc
	return nil
}

// ListOperations returns the registered operations and their payload
// contracts, sorted by name, for introspection.
func (r *Registry) ListOperations() []OperationInfo {
	infos := make([]OperationInfo, 0, len(r.ops))
	for _, desc := range r.ops {
		infos = append(infos, OperationInfo{Name: desc.Name, Fields: desc.Fields})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// operationNames returns the sorted registered names for error payloads.
func (r *Registry) operationNames() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch routes one request through the pipeline:
// lookup, validation, rate-limit admission, retried provider call,
// normalization. It returns a Result or one of the typed pipeline errors;
// the correlation id is treated as an opaque token and propagated into
// every log line and audit event.
func (r *Registry) Dispatch(ctx context.Context, operationType string, payload map[string]any, correlationID string) (*Result, error) {
	start := time.Now()

	desc, ok := r.ops[operationType]
	if !ok {
		err := &UnknownOperationError{Name: operationType, ValidOperations: r.operationNames()}
		r.emit(StageValidation, correlationID, map[string]any{
			"outcome": "fail",
			"reason":  err.Error(),
		})
		r.finish(operationType, CodeUnknownOperation, start)
		return nil, err
	}

	validated, fieldErrs := desc.Validate(payload)
	if len(fieldErrs) > 0 {
		r.emit(StageValidation, correlationID, map[string]any{
			"operation": operationType,
			"outcome":   "fail",
			"errors":    fieldErrs,
		})
		r.finish(operationType, CodeValidation, start)
		return nil, &ValidationError{Operation: operationType, Fields: fieldErrs}
	}
	r.emit(StageValidation, correlationID, map[string]any{
		"operation": operationType,
		"outcome":   "pass",
	})

	// Rate-limit admission is its own short critical section; the provider
	// call below runs outside any lock.
	if !r.limiter.TryAcquire() {
		retryAfter := r.limiter.RetryAfter()
		r.collector.RecordRateLimitDenial()
		r.logger.Warn("rate limit denial",
			"request_id", correlationID,
			"operation", operationType,
			"retry_after", retryAfter,
		)
		r.finish(operationType, CodeRateLimited, start)
		return nil, &RateLimitedError{RetryAfter: retryAfter}
	}

	r.emit(StageProviderCall, correlationID, map[string]any{
		"operation": operationType,
	})

	var raw any
	attempts := 0
	err := r.engine.Do(ctx, correlationID, r.retryable, func(ctx context.Context) error {
		attempts++
		attemptStart := time.Now()
		value, callErr := desc.Call(ctx, validated)
		r.collector.RecordUpstreamAttempt(operationType, time.Since(attemptStart))
		if callErr != nil {
			return callErr
		}
		raw = value
		return nil
	})

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			r.emit(StageProviderResult, correlationID, map[string]any{
				"operation": operationType,
				"outcome":   "cancelled",
				"attempts":  attempts,
			})
			r.finish(operationType, CodeTimeout, start)
			return nil, &TimeoutError{Cause: err}
		}

		upstreamErr := asUpstreamError(err, attempts)
		r.emit(StageProviderResult, correlationID, map[string]any{
			"operation": operationType,
			"outcome":   "error",
			"attempts":  attempts,
			"reason":    err.Error(),
		})
		r.finish(operationType, CodeUpstream, start)
		return nil, upstreamErr
	}

	r.emit(StageProviderResult, correlationID, map[string]any{
		"operation": operationType,
		"outcome":   "success",
		"attempts":  attempts,
	})

	data, normErr := desc.Normalize(raw)
	if normErr != nil {
		r.emit(StageNormalization, correlationID, map[string]any{
			"operation": operationType,
			"outcome":   "error",
			"reason":    normErr.Error(),
		})
		r.finish(operationType, CodeInternal, start)
		return nil, &NormalizationError{Operation: operationType, Cause: normErr}
	}

	r.emit(StageNormalization, correlationID, map[string]any{
		"operation": operationType,
		"outcome":   "success",
	})
	r.finish(operationType, "success", start)

	return &Result{
		CorrelationID: correlationID,
		OperationType: operationType,
		Data:          data,
	}, nil
}

// emit sends one audit event and mirrors it to the structured log.
// Audit failures never reach the pipeline.
func (r *Registry) emit(stage, correlationID string, fields map[string]any) {
	if r.audit != nil {
		r.audit.Emit(stage, correlationID, fields)
	}

	args := make([]any, 0, 2*len(fields)+4)
	args = append(args, "request_id", correlationID, "stage", stage)
	for k, v := range fields {
		args = append(args, k, v)
	}
	r.logger.Debug("dispatch stage", args...)
}

// finish records the dispatch outcome metric.
func (r *Registry) finish(operationType, outcome string, start time.Time) {
	r.collector.RecordDispatch(operationType, outcome, time.Since(start))
}

// asUpstreamError wraps a terminal provider failure, extracting the
// upstream status when the provider reported one.
func asUpstreamError(err error, attempts int) *UpstreamError {
	status := 0
	message := "upstream API failed"

	var provErr *providers.ProviderError
	if errors.As(err, &provErr) {
		status = provErr.StatusCode
		if provErr.Message != "" {
			message = provErr.Message
		}
	}

	var timeoutErr *providers.TimeoutError
	if errors.As(err, &timeoutErr) {
		message = timeoutErr.Error()
	}

	return &UpstreamError{
		StatusCode: status,
		Message:    message,
		Attempts:   attempts,
		Cause:      err,
	}
}
