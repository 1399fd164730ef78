// Package dispatch implements the operation-dispatch pipeline at the core
// of the proxy: a registry mapping operation names to payload validators,
// provider calls, and response normalizers, plus the orchestration of
// validation, rate limiting, retried provider invocation, and
// normalization.
//
// # Pipeline
//
// Dispatch runs each request through fixed stages:
//
//	lookup -> validate -> rate limit -> provider call (retried) -> normalize
//
// Every stage transition emits one structured audit event carrying the
// request's correlation id. Failures surface as typed errors
// (UnknownOperationError, ValidationError, RateLimitedError, UpstreamError,
// NormalizationError, TimeoutError); the transport layer maps each kind to
// an HTTP status while the core stays transport-free.
//
// # Concurrency
//
// The registry is immutable after startup wiring, so concurrent Dispatch
// calls need no mutual exclusion for lookups. The rate limiter's admission
// check is the only shared critical section, and it never spans the
// provider call: retries and upstream waits run outside any lock,
// suspending only the calling goroutine.
package dispatch
