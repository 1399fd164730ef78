// Package metrics provides Prometheus instrumentation for the dispatch
// pipeline: dispatch counts and latency by operation and outcome, rate
// limiter denials, and per-attempt upstream call latency.
//
// All recording methods are nil-receiver safe so instrumentation can be
// disabled by simply not wiring a Collector.
package metrics
