package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindow admits at most maxRequests events in any trailing window.
//
// # Algorithm
//
//  1. Evict timestamps older than now - window
//  2. If fewer than maxRequests remain, record now and admit
//  3. Otherwise deny
//
// Eviction is lazy (step 1 runs only on the access path), so the slice never
// holds more than maxRequests live entries plus whatever expired since the
// last call.
//
// # Thread Safety
//
// All state is guarded by a single mutex. The critical section covers only
// the check-and-record step; callers must never hold it across upstream
// calls.
type SlidingWindow struct {
	maxRequests int
	window      time.Duration
	timestamps  []time.Time
	mu          sync.Mutex

	// now is the clock source, replaceable in tests.
	now func() time.Time
}

// NewSlidingWindow creates a limiter admitting maxRequests per window.
//
// A maxRequests of zero denies everything; a zero window admits everything
// up to maxRequests concurrently observable calls (every prior timestamp is
// instantly stale).
func NewSlidingWindow(maxRequests int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		maxRequests: maxRequests,
		window:      window,
		timestamps:  make([]time.Time, 0, maxRequests),
		now:         time.Now,
	}
}

// TryAcquire attempts to take one slot from the shared budget.
// It returns true if the request is admitted and records the admission
// timestamp; it returns false immediately when the budget is exhausted.
// TryAcquire never blocks.
func (sw *SlidingWindow) TryAcquire() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := sw.now()
	sw.evictLocked(now)

	if len(sw.timestamps) >= sw.maxRequests {
		return false
	}

	sw.timestamps = append(sw.timestamps, now)
	return true
}

// RetryAfter returns how long a denied caller should wait before the oldest
// in-window admission expires and a slot opens. It returns zero when a slot
// is already free.
func (sw *SlidingWindow) RetryAfter() time.Duration {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := sw.now()
	sw.evictLocked(now)

	if len(sw.timestamps) < sw.maxRequests || len(sw.timestamps) == 0 {
		return 0
	}

	wait := sw.window - now.Sub(sw.timestamps[0])
	if wait < 0 {
		return 0
	}
	return wait
}

// InFlight returns the number of admissions currently inside the window.
func (sw *SlidingWindow) InFlight() int {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	sw.evictLocked(sw.now())
	return len(sw.timestamps)
}

// evictLocked drops timestamps older than the window.
// Caller must hold sw.mu. Timestamps are appended in order, so the live
// suffix starts at the first entry still inside the window.
func (sw *SlidingWindow) evictLocked(now time.Time) {
	cutoff := now.Add(-sw.window)

	idx := 0
	for idx < len(sw.timestamps) && !sw.timestamps[idx].After(cutoff) {
		idx++
	}
	if idx > 0 {
		sw.timestamps = append(sw.timestamps[:0], sw.timestamps[idx:]...)
	}
}
