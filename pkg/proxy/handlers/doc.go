// Package handlers implements the proxy's HTTP endpoints.
//
//	POST /proxy/execute  - single entry point dispatching every operation
//	GET  /operations     - registered operations and payload contracts
//	GET  /health         - proxy and provider health
//
// All errors leave through the uniform envelope in proxy/types with the
// status mapping:
//
//	UNKNOWN_OPERATION  400
//	VALIDATION_ERROR   400
//	RATE_LIMITED       429 (with Retry-After)
//	UPSTREAM_ERROR     502
//	INTERNAL_ERROR     500
//	TIMEOUT            504
package handlers
