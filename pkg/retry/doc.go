// Package retry provides a generic exponential-backoff engine for wrapping
// fallible upstream calls.
//
// # Overview
//
// The engine re-invokes an operation until it succeeds, a non-retryable
// error occurs, the retry budget is exhausted, or the caller's context is
// cancelled. It carries no knowledge of what the operation does; the proxy
// uses it exclusively to wrap provider calls, with the classification of
// retryable errors supplied by the caller.
//
// # Backoff
//
// The delay before attempt n (n >= 2) is:
//
//	delay = min(MaxDelay, BaseDelay * Multiplier^(n-2))
//
// then perturbed by jitter, a uniform multiplier in
// [1-JitterRange, 1+JitterRange], and clamped to be non-negative. Attempt 1
// always runs immediately. Jitter decorrelates concurrent retriers so that
// a burst of failures does not produce a synchronized retry storm.
//
// # Cancellation
//
// Sleeps between attempts select on the context, so a deadline imposed by
// the transport layer abandons an in-flight backoff promptly. Only the
// calling goroutine is suspended; other requests proceed independently.
package retry
