// Package retention enforces the audit trail retention policy.
//
// The Pruner deletes events older than the configured retention period
// and, optionally, trims the trail to a maximum event count. The
// Scheduler runs pruning on a cron schedule (default daily at 3 AM).
package retention
