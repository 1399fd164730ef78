package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errTransient = errors.New("upstream unavailable")
var errFatal = errors.New("bad request")

func testPolicy(maxRetries int) Policy {
	return Policy{
		MaxRetries:  maxRetries,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
		Multiplier:  2.0,
		JitterRange: 0,
	}
}

func TestDo_SuccessFirstAttempt(t *testing.T) {
	engine := New(testPolicy(3))

	calls := 0
	err := engine.Do(context.Background(), "corr-1", func(error) bool { return true }, func(ctx context.Context) error {
		calls++
		return nil
	})

	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 attempt, got %d", calls)
	}
}

func TestDo_RetryExhaustion(t *testing.T) {
	// maxRetries = R with a permanently failing retryable operation must
	// produce exactly R+1 attempts, then surface the last error.
	engine := New(testPolicy(3))

	calls := 0
	err := engine.Do(context.Background(), "corr-1", func(error) bool { return true }, func(ctx context.Context) error {
		calls++
		return errTransient
	})

	if !errors.Is(err, errTransient) {
		t.Fatalf("Expected terminal %v, got %v", errTransient, err)
	}
	if calls != 4 {
		t.Errorf("Expected 4 attempts, got %d", calls)
	}
}

func TestDo_NonRetryableShortCircuit(t *testing.T) {
	engine := New(testPolicy(5))

	calls := 0
	err := engine.Do(context.Background(), "corr-1", func(error) bool { return false }, func(ctx context.Context) error {
		calls++
		return errFatal
	})

	if !errors.Is(err, errFatal) {
		t.Fatalf("Expected %v, got %v", errFatal, err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 attempt regardless of budget, got %d", calls)
	}
}

func TestDo_ZeroRetriesMeansSingleAttempt(t *testing.T) {
	engine := New(testPolicy(0))

	calls := 0
	err := engine.Do(context.Background(), "corr-1", func(error) bool { return true }, func(ctx context.Context) error {
		calls++
		return errTransient
	})

	if !errors.Is(err, errTransient) {
		t.Fatalf("Expected %v, got %v", errTransient, err)
	}
	if calls != 1 {
		t.Errorf("Expected exactly 1 attempt, got %d", calls)
	}
}

func TestDo_EventualSuccess(t *testing.T) {
	engine := New(testPolicy(3))

	calls := 0
	err := engine.Do(context.Background(), "corr-1", func(error) bool { return true }, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Expected eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 attempts, got %d", calls)
	}
}

func TestDo_CancellationAbandonsBackoff(t *testing.T) {
	policy := Policy{
		MaxRetries: 5,
		BaseDelay:  time.Hour, // far longer than the deadline
		MaxDelay:   time.Hour,
		Multiplier: 2.0,
	}
	engine := New(policy)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	calls := 0
	start := time.Now()
	err := engine.Do(ctx, "corr-1", func(error) bool { return true }, func(ctx context.Context) error {
		calls++
		return errTransient
	})

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 attempt before cancellation, got %d", calls)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Backoff sleep not abandoned promptly, took %v", elapsed)
	}
}

func TestBackoff_ExponentialGrowth(t *testing.T) {
	policy := Policy{
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
	}

	expected := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		30 * time.Second, // capped
		30 * time.Second, // stays capped
	}

	for i, want := range expected {
		if got := policy.Backoff(i + 1); got != want {
			t.Errorf("Backoff(%d) = %v, want %v", i+1, got, want)
		}
	}
}

func TestBackoff_MonotonicUpToCap(t *testing.T) {
	policy := Policy{
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   time.Minute,
		Multiplier: 1.7,
	}

	prev := time.Duration(0)
	for n := 1; n <= 50; n++ {
		d := policy.Backoff(n)
		if d < prev {
			t.Fatalf("Backoff(%d) = %v decreased from %v", n, d, prev)
		}
		if d > policy.MaxDelay {
			t.Fatalf("Backoff(%d) = %v exceeds cap %v", n, d, policy.MaxDelay)
		}
		prev = d
	}
}

func TestJitter_WithinBandAndNonNegative(t *testing.T) {
	policy := Policy{
		BaseDelay:   time.Second,
		MaxDelay:    time.Minute,
		Multiplier:  2.0,
		JitterRange: 0.1,
	}

	base := policy.Backoff(3)
	low := time.Duration(float64(base) * 0.9)
	high := time.Duration(float64(base) * 1.1)

	for i := 0; i < 1000; i++ {
		d := policy.jittered(base)
		if d < low || d > high {
			t.Fatalf("jittered delay %v outside [%v, %v]", d, low, high)
		}
	}
}

func TestJitter_ZeroRangeIsDeterministic(t *testing.T) {
	policy := testPolicy(1)

	base := policy.Backoff(2)
	for i := 0; i < 10; i++ {
		if got := policy.jittered(base); got != base {
			t.Fatalf("Expected deterministic delay %v, got %v", base, got)
		}
	}
}
