// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-batch-service/internal/ports"
)

// BatchResponse represents a processed batch in HTTP responses. A batch
// with failed items is still a 200 response; Success tells the caller
// whether every item was created.
type BatchResponse struct {
	BatchID    string               `json:"batch_id"`
	Success    bool                 `json:"success"`
	Created    int                  `json:"created"`
	Failed     int                  `json:"failed"`
	TotalItems int                  `json:"total_items"`
	Results    []ItemResultResponse `json:"results"`
	Mapping    map[string]string    `json:"mapping,omitempty"`
	RolledBack bool                 `json:"rolled_back"`
	Rollback   *RollbackResponse    `json:"rollback,omitempty"`
	Stats      StatsResponse        `json:"stats"`
}

// ItemResultResponse is the outcome of one item. RealID is null when the
// item was not created.
type ItemResultResponse struct {
	TempID     string  `json:"temp_id"`
	RealID     *string `json:"real_id"`
	Type       string  `json:"type"`
	Success    bool    `json:"success"`
	Error      string  `json:"error,omitempty"`
	RolledBack bool    `json:"rolled_back,omitempty"`
}

// RollbackResponse summarizes compensating deletions.
type RollbackResponse struct {
	Attempted int              `json:"attempted"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Orphans   []OrphanResponse `json:"orphans,omitempty"`
}

// OrphanResponse is an entity that still exists downstream because its
// rollback deletion failed.
type OrphanResponse struct {
	TempID string `json:"temp_id"`
	RealID string `json:"real_id"`
	Type   string `json:"type"`
	Error  string `json:"error"`
}

// StatsResponse describes the shape of the submitted hierarchy.
type StatsResponse struct {
	TotalItems int            `json:"total_items"`
	RootCount  int            `json:"root_count"`
	MaxDepth   int            `json:"max_depth"`
	ByType     map[string]int `json:"by_type"`
}

// ToBatchResponse converts a service result to an HTTP response DTO.
func ToBatchResponse(res *ports.BatchResult) BatchResponse {
	resp := BatchResponse{
		BatchID:    res.BatchID,
		Success:    res.Success,
		Created:    res.Created,
		Failed:     res.Failed,
		TotalItems: res.TotalItems,
		Results:    make([]ItemResultResponse, len(res.Results)),
		Mapping:    res.Mapping,
		RolledBack: res.RolledBack,
		Stats: StatsResponse{
			TotalItems: res.Stats.TotalItems,
			RootCount:  res.Stats.RootCount,
			MaxDepth:   res.Stats.MaxDepth,
			ByType:     make(map[string]int, len(res.Stats.ByType)),
		},
	}

	for i, r := range res.Results {
		item := ItemResultResponse{
			TempID:     r.TempID,
			Type:       r.Type.String(),
			Success:    r.Success,
			Error:      r.Error,
			RolledBack: r.RolledBack,
		}
		if r.RealID != "" {
			id := r.RealID
			item.RealID = &id
		}
		resp.Results[i] = item
	}

	for typ, n := range res.Stats.ByType {
		resp.Stats.ByType[typ.String()] = n
	}

	if rb := res.Rollback; rb != nil {
		resp.Rollback = &RollbackResponse{
			Attempted: rb.Attempted,
			Succeeded: rb.Succeeded,
			Failed:    rb.Failed,
		}
		for _, o := range rb.Orphans {
			resp.Rollback.Orphans = append(resp.Rollback.Orphans, OrphanResponse{
				TempID: o.TempID,
				RealID: o.RealID,
				Type:   o.Type.String(),
				Error:  o.Error,
			})
		}
	}

	return resp
}
