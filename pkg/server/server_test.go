package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sportsgate-hq/sportsgate/pkg/config"
	"sportsgate-hq/sportsgate/pkg/dispatch"
	"sportsgate-hq/sportsgate/pkg/limits/ratelimit"
	"sportsgate-hq/sportsgate/pkg/operations"
	"sportsgate-hq/sportsgate/pkg/providers"
	"sportsgate-hq/sportsgate/pkg/retry"
)

type stubProvider struct{}

func (stubProvider) ListLeagues(ctx context.Context) ([]providers.League, error) {
	return []providers.League{
		{ID: 4608, Name: "1. Fußball-Bundesliga", Shortcut: "bl1", Country: "Germany", Season: "2024"},
	}, nil
}

func (stubProvider) GetLeagueMatches(ctx context.Context, shortcut, season string) ([]providers.Match, error) {
	return nil, nil
}

func (stubProvider) GetTeam(ctx context.Context, teamID int) (providers.Team, error) {
	return providers.Team{ID: teamID, Name: "FC Bayern München"}, nil
}

func (stubProvider) GetMatch(ctx context.Context, matchID int) (providers.Match, error) {
	return providers.Match{
		ID:    matchID,
		Score: providers.Score{Status: providers.MatchScheduled},
	}, nil
}

func (stubProvider) HealthCheck(ctx context.Context) error { return nil }
func (stubProvider) Name() string                          { return "stub" }
func (stubProvider) Health() providers.ProviderHealth {
	return providers.ProviderHealth{IsHealthy: true}
}
func (stubProvider) Close() error { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	engine := retry.New(retry.Policy{
		MaxRetries:  1,
		BaseDelay:   time.Millisecond,
		MaxDelay:    time.Millisecond,
		Multiplier:  2,
		JitterRange: 0,
	})
	registry := dispatch.NewRegistry(ratelimit.NewSlidingWindow(100, time.Minute), engine)
	if err := operations.RegisterAll(registry, stubProvider{}); err != nil {
		t.Fatalf("wiring operations: %v", err)
	}

	return New(cfg, registry, stubProvider{}, nil, "test")
}

func TestHandler_ExecuteRoute(t *testing.T) {
	handler := newTestServer(t).Handler()

	body := `{"operationType":"ListLeagues","payload":{}}`
	req := httptest.NewRequest(http.MethodPost, "/proxy/execute", strings.NewReader(body))
	req.Header.Set("X-Request-ID", "corr-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parsing body: %v", err)
	}
	if resp["requestId"] != "corr-1" {
		t.Errorf("expected requestId corr-1, got %v", resp["requestId"])
	}
	if rec.Header().Get("X-Request-ID") != "corr-1" {
		t.Errorf("expected echoed request id header")
	}
}

func TestHandler_OperationsRoute(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/operations", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "GetMatch") {
		t.Errorf("expected operation list, got %s", rec.Body.String())
	}
}

func TestHandler_HealthRoute(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("expected ok status, got %s", rec.Body.String())
	}
}

func TestHandler_RequestIDGeneratedWhenMissing(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id header")
	}
}
