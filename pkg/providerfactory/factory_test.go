package providerfactory

import (
	"errors"
	"testing"
	"time"

	"sportsgate-hq/sportsgate/pkg/providers"
)

func TestNewProvider_OpenLiga(t *testing.T) {
	p, err := NewProvider(providers.ProviderConfig{
		Name:    "openliga",
		Timeout: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	defer p.Close()

	if p.Name() != "openliga" {
		t.Errorf("Expected provider name openliga, got %q", p.Name())
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(providers.ProviderConfig{Name: "espn"})

	var cfgErr *providers.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigError, got %v", err)
	}
	if cfgErr.Provider != "espn" {
		t.Errorf("Expected provider espn in error, got %q", cfgErr.Provider)
	}
}
