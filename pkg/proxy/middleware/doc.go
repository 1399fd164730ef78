// Package middleware provides the HTTP middleware chain for the proxy.
//
// The standard chain, outermost first:
//
//	RecoveryMiddleware      - panic recovery with a JSON 500
//	RequestIDMiddleware     - correlation id assignment and propagation
//	LoggingMiddleware       - structured request/response logging
//	TimeoutMiddleware       - per-request deadline
//
// The correlation id enters here: RequestIDMiddleware honors a
// client-supplied X-Request-ID and otherwise generates a UUID. Every
// layer below reads it from the request context.
package middleware
