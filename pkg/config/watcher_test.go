package config

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, minimalConfig)

	watcher, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	var mu sync.Mutex
	var reloaded *Config

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		watcher.Watch(ctx, func(cfg *Config) {
			mu.Lock()
			reloaded = cfg
			mu.Unlock()
		})
	}()

	// Give the watch loop time to register.
	time.Sleep(50 * time.Millisecond)

	updated := minimalConfig + "\nretry:\n  max_retries: 7\n"
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		mu.Lock()
		got := reloaded
		mu.Unlock()
		if got != nil {
			if got.Retry.MaxRetries != 7 {
				t.Errorf("expected reloaded max_retries 7, got %d", got.Retry.MaxRetries)
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("reload was not observed")
		case <-time.After(20 * time.Millisecond):
		}
	}

	if err := watcher.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	<-done
}

func TestWatcher_InvalidReloadKeepsRunning(t *testing.T) {
	path := writeConfig(t, minimalConfig)

	watcher, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	var mu sync.Mutex
	var reloads int

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		watcher.Watch(ctx, func(cfg *Config) {
			mu.Lock()
			reloads++
			mu.Unlock()
		})
	}()

	time.Sleep(50 * time.Millisecond)

	// Broken write: must not reach the callback.
	if err := os.WriteFile(path, []byte("provider: [broken"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	afterBroken := reloads
	mu.Unlock()
	if afterBroken != 0 {
		t.Errorf("invalid configuration must not trigger the callback, got %d reloads", afterBroken)
	}

	// Valid write afterwards still reloads.
	if err := os.WriteFile(path, []byte(minimalConfig), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		mu.Lock()
		got := reloads
		mu.Unlock()
		if got > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("watcher stopped reloading after an invalid write")
		case <-time.After(20 * time.Millisecond):
		}
	}

	if err := watcher.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	<-done
}
