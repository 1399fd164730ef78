package recorder

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"sportsgate-hq/sportsgate/pkg/audit"
)

// Config contains configuration for the audit recorder.
type Config struct {
	// Enabled enables audit recording.
	Enabled bool

	// AsyncBuffer is the size of the async write channel buffer.
	// Default: 1000
	AsyncBuffer int

	// WriteTimeout bounds each storage write.
	// Default: 5 seconds
	WriteTimeout time.Duration
}

// DefaultConfig returns the default recorder configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		AsyncBuffer:  1000,
		WriteTimeout: 5 * time.Second,
	}
}

// Recorder records audit events for dispatched operations. Events are
// written asynchronously so the dispatch pipeline never blocks on storage.
// It satisfies the dispatch pipeline's audit sink contract.
type Recorder struct {
	storage   audit.Storage
	config    *Config
	eventChan chan *audit.Event
	wg        sync.WaitGroup
	closeOnce sync.Once
	dropped   atomic.Int64
	logger    *slog.Logger
}

// New creates a recorder backed by the given storage and starts its
// background writer.
func New(storage audit.Storage, config *Config) *Recorder {
	if config == nil {
		config = DefaultConfig()
	}

	r := &Recorder{
		storage:   storage,
		config:    config,
		eventChan: make(chan *audit.Event, config.AsyncBuffer),
		logger:    slog.Default().With("component", "audit.recorder"),
	}

	r.wg.Add(1)
	go r.worker()

	r.logger.Info("audit recorder initialized",
		"async_buffer", config.AsyncBuffer,
		"write_timeout", config.WriteTimeout,
	)

	return r
}

// Emit enqueues one stage event. It never blocks: when the buffer is full
// the event is dropped and counted.
func (r *Recorder) Emit(stage, correlationID string, fields map[string]any) {
	if !r.config.Enabled {
		return
	}

	event := &audit.Event{
		ID:            uuid.New().String(),
		CorrelationID: correlationID,
		Stage:         stage,
		RecordedAt:    time.Now().UTC(),
	}

	// Promote the well-known keys to indexed columns; the rest stays in
	// the fields blob.
	remaining := make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case "operation":
			if s, ok := v.(string); ok {
				event.Operation = s
				continue
			}
		case "outcome":
			if s, ok := v.(string); ok {
				event.Outcome = s
				continue
			}
		}
		remaining[k] = v
	}
	if len(remaining) > 0 {
		event.Fields = remaining
	}

	select {
	case r.eventChan <- event:
	default:
		dropped := r.dropped.Add(1)
		if dropped%100 == 1 {
			r.logger.Warn("audit buffer full, dropping events",
				"dropped_total", dropped,
			)
		}
	}
}

// Dropped returns how many events have been dropped due to a full buffer.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Close stops the recorder and drains buffered events to storage.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		close(r.eventChan)
	})
	r.wg.Wait()
	return nil
}

// worker drains the event channel into storage.
func (r *Recorder) worker() {
	defer r.wg.Done()

	for event := range r.eventChan {
		r.write(event)
	}
}

// write persists one event with the configured timeout. Storage failures
// are logged, never propagated.
func (r *Recorder) write(event *audit.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	defer cancel()

	if err := r.storage.Store(ctx, event); err != nil {
		r.logger.Error("audit event write failed",
			"record_id", event.ID,
			"request_id", event.CorrelationID,
			"stage", event.Stage,
			"error", err,
		)
	}
}
