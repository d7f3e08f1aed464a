// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-batch-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-batch-service/internal/ports"
)

// BatchHandler handles HTTP requests for hierarchical batch creation.
type BatchHandler struct {
	svc ports.BatchService
}

// NewBatchHandler creates a new BatchHandler with the given service port.
func NewBatchHandler(svc ports.BatchService) *BatchHandler {
	return &BatchHandler{svc: svc}
}

// CreateBatch handles POST /api/v1/batches.
//
// A batch that was processed answers 200 even when items failed; the body
// reports per-item outcomes. Only a batch rejected before anything was
// created answers with a problem response.
func (h *BatchHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.CreateBatch(r.Context(), req.ToBatchRequest())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBatchResponse(res))
}
