package ports

import (
	"context"

	"github.com/jsamuelsen11/go-batch-service/internal/domain/batch"
)

// EntityClient defines the client port for the external system that owns
// containers and leaves. Implemented by the ACL adapter; called by the
// application layer. Real ids are opaque strings at this boundary; the
// adapter converts them to whatever the downstream API uses.
type EntityClient interface {
	// CreateContainer creates a top-level container and returns its real id.
	CreateContainer(ctx context.Context, req batch.ContainerRequest) (string, error)

	// CreateLeaf creates a leaf under the container or leaf named in req and
	// returns its real id.
	// Returns domain.ErrValidation if a parent id is malformed.
	CreateLeaf(ctx context.Context, req batch.LeafRequest) (string, error)

	// DeleteEntity removes a previously created entity. Used for
	// compensating rollback.
	// Returns domain.ErrNotFound if the entity does not exist.
	DeleteEntity(ctx context.Context, typ batch.EntityType, realID string) error
}
