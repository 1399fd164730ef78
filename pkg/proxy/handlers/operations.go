package handlers

import (
	"net/http"

	"sportsgate-hq/sportsgate/pkg/dispatch"
	"sportsgate-hq/sportsgate/pkg/proxy/types"
)

// OperationsHandler serves GET /operations: the registered operation
// names and their payload contracts, for client introspection.
type OperationsHandler struct {
	registry *dispatch.Registry
}

// NewOperationsHandler creates the operations handler.
func NewOperationsHandler(registry *dispatch.Registry) *OperationsHandler {
	return &OperationsHandler{registry: registry}
}

// operationsResponse is the GET /operations body.
type operationsResponse struct {
	Operations []dispatch.OperationInfo `json:"operations"`
}

func (h *OperationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, operationsResponse{
		Operations: h.registry.ListOperations(),
	})
}
