// Package telemetry provides observability for the sportsgate proxy.
//
// # Components
//
//   - logging: structured slog-based logging with correlation ids and
//     sensitive-header redaction
//   - metrics: Prometheus metrics for the dispatch pipeline
//
// Both components are wired once at startup; the dispatch pipeline and the
// HTTP layer record through them without ever blocking on telemetry I/O.
package telemetry
