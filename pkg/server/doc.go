// Package server ties the proxy together: it builds the HTTP router and
// middleware chain around the dispatch registry and manages the server
// lifecycle, including graceful shutdown on SIGTERM/SIGINT.
//
// Routes:
//
//	POST /proxy/execute  - operation dispatch
//	GET  /operations     - operation introspection
//	GET  /health         - proxy and provider health
//	GET  /metrics        - Prometheus exposition (when enabled)
package server
