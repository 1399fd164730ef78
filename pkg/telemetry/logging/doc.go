// Package logging provides structured logging for the proxy.
//
// The Logger wraps log/slog with level and format parsing, secret
// redaction, and context-aware field extraction. The correlation id of a
// request travels in the context and is attached to every log line
// emitted on its behalf.
//
// The minimum level can be changed at runtime via SetLevel, which the
// configuration watcher uses to apply log level changes without a
// restart.
package logging
