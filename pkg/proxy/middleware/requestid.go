package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"sportsgate-hq/sportsgate/pkg/telemetry/logging"
)

// RequestIDHeader is the HTTP header carrying the correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns each request a correlation id. A
// client-supplied X-Request-ID is honored as an opaque token; otherwise a
// UUID is generated. The id is stored in the request context, echoed in
// the X-Request-ID response header, and attached to every log line and
// audit event downstream.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := logging.WithRequestID(r.Context(), requestID)
		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
