package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// HTTPProvider is the base implementation for HTTP-based provider adapters.
// It provides connection pooling, timeout handling, JSON decoding, and
// health accounting.
//
// Concrete adapters (openliga) embed this struct and implement the
// SportsProvider methods on top of GetJSON. HTTPProvider performs exactly
// one upstream call per invocation; the dispatch pipeline owns retries.
type HTTPProvider struct {
	// config contains the provider configuration.
	config ProviderConfig

	// client is the HTTP client with connection pooling.
	client *http.Client

	// health tracks the provider's health status.
	health ProviderHealth

	// healthMu protects concurrent access to health status.
	healthMu sync.RWMutex
}

// NewHTTPProvider creates a new base HTTP provider with connection pooling.
func NewHTTPProvider(config ProviderConfig) *HTTPProvider {
	transport := &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	return &HTTPProvider{
		config: config,
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
		health: ProviderHealth{
			IsHealthy: true, // Start optimistic
			LastCheck: time.Now(),
		},
	}
}

// Name returns the provider's configured name.
func (p *HTTPProvider) Name() string {
	return p.config.Name
}

// Config returns the provider's configuration.
func (p *HTTPProvider) Config() ProviderConfig {
	return p.config
}

// Health returns current health accounting.
func (p *HTTPProvider) Health() ProviderHealth {
	p.healthMu.RLock()
	defer p.healthMu.RUnlock()
	return p.health
}

// recordOutcome updates health accounting after an upstream call.
func (p *HTTPProvider) recordOutcome(success bool, err error) {
	p.healthMu.Lock()
	defer p.healthMu.Unlock()

	p.health.LastCheck = time.Now()
	p.health.TotalRequests++

	if success {
		p.health.IsHealthy = true
		p.health.ConsecutiveFailures = 0
		p.health.LastError = nil
		return
	}

	p.health.FailedRequests++
	p.health.ConsecutiveFailures++
	p.health.LastError = err

	// Three consecutive failures flip the health flag.
	if p.health.ConsecutiveFailures >= 3 {
		p.health.IsHealthy = false
		slog.Warn("provider marked unhealthy",
			"provider", p.config.Name,
			"consecutive_failures", p.health.ConsecutiveFailures,
			"error", err,
		)
	}
}

// GetJSON performs a GET request against url and decodes the JSON response
// into out. Non-2xx statuses fail with a ProviderError carrying the
// upstream status; transport failures fail with a ProviderError (status 0)
// or a TimeoutError when the client timeout elapsed.
func (p *HTTPProvider) GetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	slog.Debug("sending upstream request",
		"provider", p.config.Name,
		"url", url,
	)

	resp, err := p.client.Do(req)
	latency := time.Since(start)

	if err != nil {
		p.recordOutcome(false, err)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if isTimeout(err) {
			return &TimeoutError{
				Provider: p.config.Name,
				Timeout:  p.config.Timeout,
			}
		}
		return &ProviderError{
			Provider: p.config.Name,
			Message:  "upstream request failed",
			Cause:    err,
		}
	}
	defer resp.Body.Close()

	slog.Debug("upstream response",
		"provider", p.config.Name,
		"url", url,
		"status", resp.StatusCode,
		"latency_ms", latency.Milliseconds(),
	)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		p.recordOutcome(false, err)
		return &ParseError{
			Provider: p.config.Name,
			Cause:    fmt.Errorf("failed to read response: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := &ProviderError{
			Provider:   p.config.Name,
			StatusCode: resp.StatusCode,
			Message:    truncate(string(body), 200),
		}
		p.recordOutcome(false, perr)
		return perr
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			p.recordOutcome(false, err)
			return &ParseError{
				Provider:    p.config.Name,
				RawResponse: truncate(string(body), 200),
				Cause:       fmt.Errorf("failed to unmarshal response: %w", err),
			}
		}
	}

	p.recordOutcome(true, nil)
	return nil
}

// Close releases idle connections. After Close the provider must not be used.
func (p *HTTPProvider) Close() error {
	p.client.CloseIdleConnections()
	slog.Info("provider closed", "provider", p.config.Name)
	return nil
}

// isTimeout reports whether err is a client-side timeout.
func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	for e := err; e != nil; {
		if t, ok := e.(timeout); ok && t.Timeout() {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}

// truncate caps s at n bytes for log and error payloads.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
