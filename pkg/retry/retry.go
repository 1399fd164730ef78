package retry

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// Policy configures the backoff schedule for one engine.
type Policy struct {
	// MaxRetries is the number of re-invocations after the first attempt.
	// Zero means exactly one attempt, no retry.
	MaxRetries int

	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration

	// MaxDelay caps the computed delay regardless of attempt count.
	MaxDelay time.Duration

	// Multiplier is the exponential growth factor between retries.
	Multiplier float64

	// JitterRange is the half-width of the uniform jitter band applied to
	// each delay. 0 produces a deterministic schedule; 0.1 perturbs each
	// delay by up to +/-10%.
	JitterRange float64
}

// Backoff returns the pre-jitter delay before the given retry, 1-based:
// retry 1 waits BaseDelay, retry n waits BaseDelay * Multiplier^(n-1),
// always capped at MaxDelay. The cap keeps the schedule monotonic and
// bounded no matter how many attempts run.
func (p Policy) Backoff(retryNumber int) time.Duration {
	if retryNumber < 1 {
		retryNumber = 1
	}

	delay := float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(retryNumber-1))
	if ceiling := float64(p.MaxDelay); delay > ceiling {
		delay = ceiling
	}
	return time.Duration(delay)
}

// jittered applies the uniform jitter band to a computed delay and clamps
// the result to be non-negative.
func (p Policy) jittered(delay time.Duration) time.Duration {
	if p.JitterRange == 0 {
		return delay
	}

	factor := 1 + (rand.Float64()*2-1)*p.JitterRange
	d := time.Duration(float64(delay) * factor)
	if d < 0 {
		d = 0
	}
	return d
}

// Engine executes operations under a fixed retry policy.
// An Engine is stateless between calls and safe for concurrent use; all
// per-call attempt state lives on the calling goroutine's stack.
type Engine struct {
	policy Policy
	logger *slog.Logger
}

// New creates an Engine with the given policy.
func New(policy Policy) *Engine {
	return &Engine{
		policy: policy,
		logger: slog.Default().With("component", "retry"),
	}
}

// Policy returns the engine's configured policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Do invokes op until it succeeds or terminates.
//
// The first attempt runs immediately. After a failure, op is re-invoked
// only when retryable(err) is true and the retry budget is not exhausted;
// otherwise the error propagates unchanged so callers can inspect it with
// errors.As. A context cancellation during the backoff sleep or inside op
// surfaces as ctx.Err(); the abandoned attempt is not re-sent.
//
// Every failed attempt and its computed delay is logged with the
// correlation id for traceability.
func (e *Engine) Do(ctx context.Context, correlationID string, retryable func(error) bool, op func(context.Context) error) error {
	totalAttempts := e.policy.MaxRetries + 1

	var lastErr error
	for attempt := 1; attempt <= totalAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op(ctx)
		if err == nil {
			if attempt > 1 {
				e.logger.Info("operation succeeded after retry",
					"request_id", correlationID,
					"attempt", attempt,
				)
			}
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if !retryable(err) {
			e.logger.Warn("non-retryable failure",
				"request_id", correlationID,
				"attempt", attempt,
				"error", err,
			)
			return err
		}

		if attempt == totalAttempts {
			break
		}

		delay := e.policy.jittered(e.policy.Backoff(attempt))
		e.logger.Warn("retryable failure, backing off",
			"request_id", correlationID,
			"attempt", attempt,
			"max_attempts", totalAttempts,
			"delay", delay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	e.logger.Warn("retry budget exhausted",
		"request_id", correlationID,
		"attempts", totalAttempts,
		"error", lastErr,
	)
	return lastErr
}
