package ports

import (
	"context"

	"github.com/jsamuelsen11/go-batch-service/internal/domain/batch"
)

// BatchService defines the service port for hierarchical batch creation.
// Implemented by the application layer; called by inbound adapters (handlers).
type BatchService interface {
	// CreateBatch validates the batch, creates every item against the
	// external system parents first, and optionally rolls back on failure.
	//
	// Structural problems (empty batch, malformed items, duplicate temp ids,
	// unknown parents, cycles) are returned as errors wrapping
	// domain.ErrValidation and nothing is created. Failures of individual
	// items are never returned as errors; they are reported in the result.
	CreateBatch(ctx context.Context, req BatchRequest) (*BatchResult, error)
}

// BatchOptions controls how a batch is executed.
type BatchOptions struct {
	// CreateSequentially orders items parents first. When false, items are
	// processed in submission order.
	CreateSequentially bool
	// StopOnError halts at the first failed item.
	StopOnError bool
	// AtomicOperation deletes everything created when any item fails.
	AtomicOperation bool
	// ReturnMapping includes the temp id to real id table in the result.
	ReturnMapping bool
}

// DefaultBatchOptions returns the options used when a caller sets none.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		CreateSequentially: true,
		ReturnMapping:      true,
	}
}

// BatchRequest is one batch submission.
type BatchRequest struct {
	Items   []batch.Item
	Options BatchOptions
}

// ItemResult is the outcome of one processed item.
type ItemResult struct {
	TempID     string
	RealID     string
	Type       batch.EntityType
	Success    bool
	Error      string
	RolledBack bool
}

// Orphan is an entity that was created but could not be deleted during
// rollback. It still exists downstream.
type Orphan struct {
	TempID string
	RealID string
	Type   batch.EntityType
	Error  string
}

// RollbackReport summarizes a compensating rollback.
type RollbackReport struct {
	Attempted int
	Succeeded int
	Failed    int
	Orphans   []Orphan
}

// BatchResult holds the outcome of a processed batch. Success is true only
// when no item failed. Created counts entities that still exist after any
// rollback.
type BatchResult struct {
	BatchID    string
	Success    bool
	Created    int
	Failed     int
	TotalItems int
	Results    []ItemResult
	Mapping    map[string]string
	RolledBack bool
	Rollback   *RollbackReport
	Stats      batch.Stats
}
