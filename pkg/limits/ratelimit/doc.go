// Package ratelimit provides the sliding-window admission control that
// protects the upstream sports API.
//
// # Overview
//
// The package implements a single process-wide request budget: at most
// MaxRequests admissions within any trailing Window. The budget is shared by
// all concurrent requests in the process - it is not per-client, per-key, or
// distributed - and it resets on process restart.
//
// # Sliding Window
//
// The limiter keeps an ordered slice of admission timestamps. On each
// TryAcquire, timestamps older than the window are evicted lazily and the
// request is admitted only if a slot remains:
//
//	limiter := ratelimit.NewSlidingWindow(10, time.Minute)
//	if limiter.TryAcquire() {
//	    // Request admitted
//	} else {
//	    // Denied; suggest limiter.RetryAfter() to the caller
//	}
//
// A denial is immediate, never queued. Memory is bounded by MaxRequests
// entries since eviction happens on every access; no background sweep runs.
//
// # Thread Safety
//
// The check-then-append sequence executes under a single mutex so that
// admission decisions are linearizable: two concurrent callers can never
// both take the last remaining slot.
package ratelimit
