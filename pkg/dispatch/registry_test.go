package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sportsgate-hq/sportsgate/pkg/limits/ratelimit"
	"sportsgate-hq/sportsgate/pkg/providers"
	"sportsgate-hq/sportsgate/pkg/retry"
)

func testEngine(maxRetries int) *retry.Engine {
	return retry.New(retry.Policy{
		MaxRetries:  maxRetries,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
		Multiplier:  2,
		JitterRange: 0,
	})
}

func testRegistry(budget int, engine *retry.Engine, opts ...Option) *Registry {
	return NewRegistry(ratelimit.NewSlidingWindow(budget, time.Minute), engine, opts...)
}

func echoDescriptor(name string, call ProviderCall) Descriptor {
	return Descriptor{
		Name:     name,
		Validate: func(payload map[string]any) (any, []FieldError) { return payload, nil },
		Call:     call,
		Normalize: func(raw any) (any, error) {
			return raw, nil
		},
	}
}

// memorySink collects audit events for assertions.
type memorySink struct {
	mu     sync.Mutex
	events []string
}

func (s *memorySink) Emit(stage, correlationID string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, stage)
}

func (s *memorySink) stages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func TestRegister_DuplicateName(t *testing.T) {
	r := testRegistry(10, testEngine(0))

	desc := echoDescriptor("Echo", func(ctx context.Context, _ any) (any, error) { return "ok", nil })
	if err := r.Register(desc); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	err := r.Register(desc)
	var dup *DuplicateOperationError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateOperationError, got %v", err)
	}
	if dup.Name != "Echo" {
		t.Errorf("expected name Echo, got %q", dup.Name)
	}
}

func TestDispatch_UnknownOperation(t *testing.T) {
	r := testRegistry(10, testEngine(0))
	if err := r.Register(echoDescriptor("Known", nil)); err != nil {
		t.Fatal(err)
	}

	_, err := r.Dispatch(context.Background(), "Nope", nil, "corr-1")
	var unknown *UnknownOperationError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownOperationError, got %v", err)
	}
	if len(unknown.ValidOperations) != 1 || unknown.ValidOperations[0] != "Known" {
		t.Errorf("expected valid operations [Known], got %v", unknown.ValidOperations)
	}
	if unknown.Code() != CodeUnknownOperation {
		t.Errorf("expected code %s, got %s", CodeUnknownOperation, unknown.Code())
	}
}

func TestDispatch_ValidationReportsAllFields(t *testing.T) {
	r := testRegistry(10, testEngine(0))
	called := false
	desc := Descriptor{
		Name: "Strict",
		Validate: func(payload map[string]any) (any, []FieldError) {
			return nil, []FieldError{
				{Field: "league_shortcut", Message: "field required", Type: "missing"},
				{Field: "league_season", Message: "field required", Type: "missing"},
			}
		},
		Call: func(ctx context.Context, _ any) (any, error) {
			called = true
			return nil, nil
		},
		Normalize: func(raw any) (any, error) { return raw, nil },
	}
	if err := r.Register(desc); err != nil {
		t.Fatal(err)
	}

	_, err := r.Dispatch(context.Background(), "Strict", map[string]any{}, "corr-1")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 2 {
		t.Errorf("expected both field violations reported, got %v", vErr.Fields)
	}
	if called {
		t.Error("provider call must not run after validation failure")
	}
}

func TestDispatch_RateLimited(t *testing.T) {
	r := testRegistry(1, testEngine(0))
	if err := r.Register(echoDescriptor("Echo", func(ctx context.Context, _ any) (any, error) {
		return "ok", nil
	})); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Dispatch(context.Background(), "Echo", nil, "corr-1"); err != nil {
		t.Fatalf("first dispatch should pass: %v", err)
	}

	_, err := r.Dispatch(context.Background(), "Echo", nil, "corr-2")
	var limited *RateLimitedError
	if !errors.As(err, &limited) {
		t.Fatalf("expected RateLimitedError, got %v", err)
	}
	if limited.RetryAfterSeconds() < 1 {
		t.Errorf("retry-after hint must be at least 1s, got %d", limited.RetryAfterSeconds())
	}
}

func TestDispatch_RetryExhaustion(t *testing.T) {
	r := testRegistry(10, testEngine(3))
	calls := 0
	if err := r.Register(echoDescriptor("Flaky", func(ctx context.Context, _ any) (any, error) {
		calls++
		return nil, &providers.ProviderError{Provider: "test", StatusCode: 500, Message: "boom"}
	})); err != nil {
		t.Fatal(err)
	}

	_, err := r.Dispatch(context.Background(), "Flaky", nil, "corr-1")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if calls != 4 {
		t.Errorf("expected 4 provider calls for 3 retries, got %d", calls)
	}
	if upstream.Attempts != 4 {
		t.Errorf("expected 4 recorded attempts, got %d", upstream.Attempts)
	}
	if upstream.StatusCode != 500 {
		t.Errorf("expected upstream status 500, got %d", upstream.StatusCode)
	}
}

func TestDispatch_NonRetryableShortCircuit(t *testing.T) {
	r := testRegistry(10, testEngine(3))
	calls := 0
	if err := r.Register(echoDescriptor("NotFound", func(ctx context.Context, _ any) (any, error) {
		calls++
		return nil, &providers.ProviderError{Provider: "test", StatusCode: 404, Message: "no such match"}
	})); err != nil {
		t.Fatal(err)
	}

	_, err := r.Dispatch(context.Background(), "NotFound", nil, "corr-1")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if calls != 1 {
		t.Errorf("non-retryable failure must not be retried, got %d calls", calls)
	}
	if upstream.StatusCode != 404 {
		t.Errorf("expected upstream status 404, got %d", upstream.StatusCode)
	}
}

func TestDispatch_NormalizationFailureIsInternal(t *testing.T) {
	r := testRegistry(10, testEngine(0))
	desc := echoDescriptor("Weird", func(ctx context.Context, _ any) (any, error) {
		return "unexpected shape", nil
	})
	desc.Normalize = func(raw any) (any, error) {
		return nil, errors.New("shape mismatch")
	}
	if err := r.Register(desc); err != nil {
		t.Fatal(err)
	}

	_, err := r.Dispatch(context.Background(), "Weird", nil, "corr-1")
	var norm *NormalizationError
	if !errors.As(err, &norm) {
		t.Fatalf("expected NormalizationError, got %v", err)
	}
	if norm.Code() != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, norm.Code())
	}
	if norm.Details()["message"] != "provider response format unexpected" {
		t.Errorf("normalization details must not leak the cause, got %v", norm.Details())
	}
}

func TestDispatch_ContextCancellation(t *testing.T) {
	r := testRegistry(10, testEngine(0))
	if err := r.Register(echoDescriptor("Slow", func(ctx context.Context, _ any) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := r.Dispatch(ctx, "Slow", nil, "corr-1")
	var timeout *TimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected cause to unwrap to deadline exceeded, got %v", err)
	}
}

func TestDispatch_SuccessCarriesCorrelationID(t *testing.T) {
	sink := &memorySink{}
	r := testRegistry(10, testEngine(0), WithAudit(sink))
	if err := r.Register(echoDescriptor("Echo", func(ctx context.Context, _ any) (any, error) {
		return "payload", nil
	})); err != nil {
		t.Fatal(err)
	}

	result, err := r.Dispatch(context.Background(), "Echo", map[string]any{"k": "v"}, "corr-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CorrelationID != "corr-42" {
		t.Errorf("expected correlation id corr-42, got %q", result.CorrelationID)
	}
	if result.OperationType != "Echo" {
		t.Errorf("expected operation Echo, got %q", result.OperationType)
	}

	want := []string{StageValidation, StageProviderCall, StageProviderResult, StageNormalization}
	got := sink.stages()
	if len(got) != len(want) {
		t.Fatalf("expected stages %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stage %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestListOperations_Sorted(t *testing.T) {
	r := testRegistry(10, testEngine(0))
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		if err := r.Register(echoDescriptor(name, nil)); err != nil {
			t.Fatal(err)
		}
	}

	infos := r.ListOperations()
	want := []string{"Alpha", "Mid", "Zeta"}
	if len(infos) != len(want) {
		t.Fatalf("expected %d operations, got %d", len(want), len(infos))
	}
	for i, name := range want {
		if infos[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, infos[i].Name)
		}
	}
}
