package dto

import (
	"github.com/jsamuelsen11/go-batch-service/internal/domain"
	"github.com/jsamuelsen11/go-batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/go-batch-service/internal/ports"
)

const msgRequired = "is required"

// BatchItemRequest is one item of a batch submission. Payload is passed
// through to the downstream translators untouched.
type BatchItemRequest struct {
	TempID       string         `json:"temp_id"`
	Type         string         `json:"type"`
	Name         string         `json:"name"`
	ParentTempID string         `json:"parent_temp_id,omitempty"`
	Payload      map[string]any `json:"payload,omitempty"`
}

// CreateBatchRequest represents the JSON body for creating a batch.
// Option fields are pointers so an omitted field takes its default
// rather than false.
type CreateBatchRequest struct {
	Items              []BatchItemRequest `json:"items"`
	CreateSequentially *bool              `json:"create_sequentially,omitempty"`
	StopOnError        *bool              `json:"stop_on_error,omitempty"`
	AtomicOperation    *bool              `json:"atomic_operation,omitempty"`
	ReturnMapping      *bool              `json:"return_mapping,omitempty"`
}

// Validate checks that the items field is present. Item shape and the
// dependency structure are validated by the domain.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateBatchRequest) Validate() error {
	if r.Items == nil {
		return domain.NewFieldError("items", msgRequired)
	}
	return nil
}

// ToBatchRequest converts the DTO to the service port request, applying
// option defaults.
func (r *CreateBatchRequest) ToBatchRequest() ports.BatchRequest {
	opts := ports.DefaultBatchOptions()
	setBool(&opts.CreateSequentially, r.CreateSequentially)
	setBool(&opts.StopOnError, r.StopOnError)
	setBool(&opts.AtomicOperation, r.AtomicOperation)
	setBool(&opts.ReturnMapping, r.ReturnMapping)

	items := make([]batch.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = batch.Item{
			TempID:       it.TempID,
			Type:         batch.EntityType(it.Type),
			Name:         it.Name,
			ParentTempID: it.ParentTempID,
			Payload:      batch.Payload(it.Payload),
		}
	}

	return ports.BatchRequest{Items: items, Options: opts}
}

func setBool(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}
