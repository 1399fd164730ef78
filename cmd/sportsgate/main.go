// SportsGate is a single-entry-point reverse proxy for sports data.
//
// It exposes one dispatch endpoint that routes typed operations to an
// upstream sports data provider, adding:
//   - payload validation with per-field error reporting
//   - a process-wide sliding window rate limit
//   - exponential backoff retry for transient upstream failures
//   - correlation ID propagation and an audit trail
//
// Usage:
//
//	# Start server with default configuration
//	sportsgate run
//
//	# Start with custom configuration file
//	sportsgate run --config /path/to/config.yaml
//
//	# Validate a configuration file
//	sportsgate validate --config /path/to/config.yaml
//
//	# List the registered operations
//	sportsgate operations
//
//	# Show version information
//	sportsgate version
package main

func main() {
	Execute()
}
