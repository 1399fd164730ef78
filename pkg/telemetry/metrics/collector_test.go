package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_RecordDispatch(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCollector(registry)

	c.RecordDispatch("ListLeagues", "success", 120*time.Millisecond)
	c.RecordDispatch("ListLeagues", "success", 80*time.Millisecond)
	c.RecordDispatch("GetMatch", "UPSTREAM_ERROR", 2*time.Second)

	if got := testutil.ToFloat64(c.dispatchesTotal.WithLabelValues("ListLeagues", "success")); got != 2 {
		t.Errorf("Expected 2 successful ListLeagues dispatches, got %v", got)
	}
	if got := testutil.ToFloat64(c.dispatchesTotal.WithLabelValues("GetMatch", "UPSTREAM_ERROR")); got != 1 {
		t.Errorf("Expected 1 failed GetMatch dispatch, got %v", got)
	}
}

func TestCollector_RateLimitAndAttempts(t *testing.T) {
	c := NewCollector(nil)

	c.RecordRateLimitDenial()
	c.RecordRateLimitDenial()
	c.RecordUpstreamAttempt("GetTeam", 50*time.Millisecond)

	if got := testutil.ToFloat64(c.rateLimitDenied); got != 2 {
		t.Errorf("Expected 2 denials, got %v", got)
	}
	if got := testutil.ToFloat64(c.upstreamAttempts.WithLabelValues("GetTeam")); got != 1 {
		t.Errorf("Expected 1 attempt, got %v", got)
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector

	// Must not panic when instrumentation is not wired.
	c.RecordDispatch("ListLeagues", "success", time.Second)
	c.RecordRateLimitDenial()
	c.RecordUpstreamAttempt("GetMatch", time.Second)
}
