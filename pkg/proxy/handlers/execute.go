package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"sportsgate-hq/sportsgate/pkg/dispatch"
	"sportsgate-hq/sportsgate/pkg/proxy/types"
	"sportsgate-hq/sportsgate/pkg/telemetry/logging"
)

// ExecuteHandler serves POST /proxy/execute, the single entry point for
// every operation.
type ExecuteHandler struct {
	registry *dispatch.Registry
}

// NewExecuteHandler creates the execute handler.
func NewExecuteHandler(registry *dispatch.Registry) *ExecuteHandler {
	return &ExecuteHandler{registry: registry}
}

// ServeHTTP decodes the envelope, dispatches, and writes the result or
// the mapped error envelope.
func (h *ExecuteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := logging.GetRequestID(r.Context())

	if r.Method != http.MethodPost {
		types.WriteError(w, http.StatusMethodNotAllowed, &types.ErrorResponse{
			Error:     "method not allowed",
			Code:      dispatch.CodeValidation,
			RequestID: requestID,
		})
		return
	}

	var req types.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, &types.ErrorResponse{
			Error:     "request body is not valid JSON",
			Code:      dispatch.CodeValidation,
			RequestID: requestID,
		})
		return
	}
	if r.Header.Get("X-Request-ID") == "" && req.RequestID != "" {
		requestID = req.RequestID
	}
	if req.OperationType == "" {
		types.WriteError(w, http.StatusBadRequest, &types.ErrorResponse{
			Error: "operationType is required",
			Code:  dispatch.CodeValidation,
			Details: map[string]any{
				"validation_errors": []dispatch.FieldError{
					{Field: "operationType", Message: "field required", Type: "missing"},
				},
			},
			RequestID: requestID,
		})
		return
	}

	result, err := h.registry.Dispatch(r.Context(), req.OperationType, req.Payload, requestID)
	if err != nil {
		writeDispatchError(w, requestID, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, result)
}

// writeDispatchError maps a pipeline error onto HTTP status and envelope.
func writeDispatchError(w http.ResponseWriter, requestID string, err error) {
	resp := &types.ErrorResponse{
		Error:     err.Error(),
		Code:      dispatch.CodeInternal,
		RequestID: requestID,
	}
	status := http.StatusInternalServerError

	var unknownErr *dispatch.UnknownOperationError
	var validationErr *dispatch.ValidationError
	var rateLimitedErr *dispatch.RateLimitedError
	var upstreamErr *dispatch.UpstreamError
	var normErr *dispatch.NormalizationError
	var timeoutErr *dispatch.TimeoutError

	switch {
	case errors.As(err, &unknownErr):
		status = http.StatusBadRequest
		resp.Code = unknownErr.Code()
		resp.Details = unknownErr.Details()

	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		resp.Code = validationErr.Code()
		resp.Details = validationErr.Details()

	case errors.As(err, &rateLimitedErr):
		status = http.StatusTooManyRequests
		resp.Code = rateLimitedErr.Code()
		resp.Details = rateLimitedErr.Details()
		w.Header().Set("Retry-After", strconv.Itoa(rateLimitedErr.RetryAfterSeconds()))

	case errors.As(err, &upstreamErr):
		status = http.StatusBadGateway
		resp.Code = upstreamErr.Code()
		resp.Details = upstreamErr.Details()

	case errors.As(err, &normErr):
		status = http.StatusInternalServerError
		resp.Code = normErr.Code()
		resp.Details = normErr.Details()
		resp.Error = "provider response format unexpected"

	case errors.As(err, &timeoutErr):
		status = http.StatusGatewayTimeout
		resp.Code = timeoutErr.Code()
		resp.Details = timeoutErr.Details()
	}

	types.WriteError(w, status, resp)
}
