// Package providers defines the upstream provider abstraction for sports
// data adapters.
//
// # Overview
//
// A provider implements the SportsProvider interface: one method per
// supported operation, each returning provider-shaped raw values or failing
// with a typed error carrying an HTTP-like status. Exactly one provider is
// active per process, selected by name at construction through the
// providerfactory package.
//
// Adapters live in subpackages (currently openliga) and embed HTTPProvider,
// which supplies the pooled HTTP client, timeout handling, JSON decoding,
// and health accounting. Adapters perform a single upstream call per method;
// retrying transient failures is the dispatch pipeline's job, not the
// adapter's.
//
// # Error Classification
//
// IsTransient reports whether a provider failure is worth retrying:
// upstream 429 and 5xx statuses and network/timeout failures are transient,
// everything else (other 4xx, malformed responses) is terminal.
package providers
