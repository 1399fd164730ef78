package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"sportsgate-hq/sportsgate/pkg/dispatch"
	"sportsgate-hq/sportsgate/pkg/proxy/types"
	"sportsgate-hq/sportsgate/pkg/telemetry/logging"
)

// RecoveryMiddleware recovers from panics in HTTP handlers and returns a
// JSON 500 in the uniform error envelope. The panic and stack trace are
// logged; internals are not exposed to clients.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				requestID := logging.GetRequestID(r.Context())

				slog.ErrorContext(r.Context(), "panic in handler",
					"error", err,
					"request_id", requestID,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				types.WriteError(w, http.StatusInternalServerError, &types.ErrorResponse{
					Error:     "an internal error occurred",
					Code:      dispatch.CodeInternal,
					RequestID: requestID,
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
