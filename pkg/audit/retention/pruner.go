package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sportsgate-hq/sportsgate/pkg/audit"
)

// Config contains configuration for the retention pruner.
type Config struct {
	// RetentionDays is the number of days to retain audit events.
	// 0 means keep events forever (no age-based pruning).
	RetentionDays int

	// PruneSchedule is a cron expression for scheduling pruning.
	// Example: "0 3 * * *" (daily at 3 AM). Empty disables the scheduler.
	PruneSchedule string

	// MaxEvents is the maximum number of events to keep.
	// 0 means unlimited.
	MaxEvents int64
}

// DefaultConfig returns the default retention configuration.
func DefaultConfig() *Config {
	return &Config{
		RetentionDays: 30,
		PruneSchedule: "0 3 * * *",
		MaxEvents:     0,
	}
}

// Pruner enforces the retention policy on stored audit events.
type Pruner struct {
	storage   audit.Storage
	config    *Config
	logger    *slog.Logger
	scheduler *Scheduler
}

// NewPruner creates a new retention pruner.
func NewPruner(storage audit.Storage, config *Config) *Pruner {
	if config == nil {
		config = DefaultConfig()
	}

	pruner := &Pruner{
		storage: storage,
		config:  config,
		logger:  slog.Default().With("component", "audit.retention"),
	}
	pruner.scheduler = NewScheduler(pruner)
	return pruner
}

// Scheduler returns the pruning scheduler.
func (p *Pruner) Scheduler() *Scheduler {
	return p.scheduler
}

// Prune deletes events older than the retention period, then trims the
// trail to the maximum event count. Returns the total deleted.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var totalDeleted int64

	if p.config.RetentionDays > 0 {
		deleted, err := p.pruneByAge(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("prune by age failed: %w", err)
		}
		totalDeleted += deleted
	}

	if p.config.MaxEvents > 0 {
		deleted, err := p.pruneByCount(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("prune by count failed: %w", err)
		}
		totalDeleted += deleted
	}

	if totalDeleted > 0 {
		p.logger.Info("audit pruning completed",
			"total_deleted", totalDeleted,
			"retention_days", p.config.RetentionDays,
			"max_events", p.config.MaxEvents,
		)
	}
	return totalDeleted, nil
}

// pruneByAge deletes events older than the retention period.
func (p *Pruner) pruneByAge(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -p.config.RetentionDays)
	return p.storage.Delete(ctx, &audit.Query{EndTime: &cutoff})
}

// pruneByCount trims the trail to MaxEvents by deleting the oldest
// events beyond the cap.
func (p *Pruner) pruneByCount(ctx context.Context) (int64, error) {
	total, err := p.storage.Count(ctx, nil)
	if err != nil {
		return 0, err
	}
	excess := total - p.config.MaxEvents
	if excess <= 0 {
		return 0, nil
	}

	// Find the cutoff timestamp: the recorded_at of the newest event
	// among the excess oldest ones.
	oldest, err := p.storage.Query(ctx, &audit.Query{
		Limit:  1,
		Offset: int(p.config.MaxEvents),
	})
	if err != nil {
		return 0, err
	}
	if len(oldest) == 0 {
		return 0, nil
	}

	cutoff := oldest[0].RecordedAt
	return p.storage.Delete(ctx, &audit.Query{EndTime: &cutoff})
}
