// Package config defines the proxy configuration model and loading.
//
// Configuration is read from a YAML file, overlaid with defaults, then
// with SPORTSGATE_* environment variables, and finally validated. The
// loading sequence is:
//
//  1. Parse YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate the final configuration
//
// Environment variables follow the convention SPORTSGATE_SECTION_FIELD,
// for example SPORTSGATE_SERVER_LISTEN_ADDRESS or
// SPORTSGATE_RATE_LIMIT_MAX_REQUESTS.
//
// The Watcher reloads the file on change and applies the subset of
// settings that are safe to change at runtime (currently the log level).
package config
