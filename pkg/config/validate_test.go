package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidate_ReportsEveryInvalidField(t *testing.T) {
	cfg := validConfig()
	cfg.Server.ListenAddress = "not an address"
	cfg.Provider.Name = "espn"
	cfg.Retry.Multiplier = 0.5

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	for _, field := range []string{"server.listen_address", "provider.name", "retry.multiplier"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected %s in error, got %q", field, err.Error())
		}
	}
}

func TestValidate_JitterRangeBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Retry.JitterRange = 1.5
	if err := Validate(cfg); err == nil {
		t.Error("jitter range above 1 must fail")
	}

	cfg.Retry.JitterRange = 0
	if err := Validate(cfg); err != nil {
		t.Errorf("zero jitter is valid: %v", err)
	}
}

func TestValidate_AuditBackend(t *testing.T) {
	cfg := validConfig()
	cfg.Audit.Backend = "postgres"
	if err := Validate(cfg); err == nil {
		t.Error("unknown audit backend must fail")
	}

	cfg.Audit.Backend = "memory"
	cfg.Audit.Path = ""
	if err := Validate(cfg); err != nil {
		t.Errorf("memory backend needs no path: %v", err)
	}
}

func TestValidate_MaxDelayBelowBaseDelay(t *testing.T) {
	cfg := validConfig()
	cfg.Retry.MaxDelay = cfg.Retry.BaseDelay / 2
	if err := Validate(cfg); err == nil {
		t.Error("max_delay below base_delay must fail")
	}
}
