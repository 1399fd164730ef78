package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sportsgate-hq/sportsgate/pkg/telemetry/logging"
)

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a generated correlation id in the context")
	}
	if rec.Header().Get(RequestIDHeader) != seen {
		t.Errorf("response header %q does not match context id %q",
			rec.Header().Get(RequestIDHeader), seen)
	}
}

func TestRequestID_ClientValueHonored(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "corr-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "corr-1" {
		t.Errorf("client id must pass through untouched, got %q", seen)
	}
	if rec.Header().Get(RequestIDHeader) != "corr-1" {
		t.Errorf("client id must be echoed, got %q", rec.Header().Get(RequestIDHeader))
	}
}

func TestRecovery_PanicBecomesInternalError(t *testing.T) {
	handler := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/proxy/execute", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parsing body: %v", err)
	}
	if body["code"] != "INTERNAL_ERROR" {
		t.Errorf("expected INTERNAL_ERROR code, got %v", body["code"])
	}
	if body["error"] == "boom" {
		t.Error("panic value must not leak to the client")
	}
}

func TestTimeout_ContextDeadlinePropagates(t *testing.T) {
	var deadlineSet bool
	handler := TimeoutMiddleware(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, deadlineSet = r.Context().Deadline()
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			t.Error("context was never cancelled")
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !deadlineSet {
		t.Error("expected a deadline on the request context")
	}
}

func TestLogging_PassesRequestThrough(t *testing.T) {
	called := false
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	ctx := logging.WithRequestID(context.Background(), "corr-1")
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))

	if !called {
		t.Fatal("inner handler not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status not preserved, got %d", rec.Code)
	}
}
