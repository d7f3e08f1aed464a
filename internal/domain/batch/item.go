package batch

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-batch-service/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// EntityType is the kind of entity an Item creates downstream. There are
// exactly two variants; switches over it must handle both and reject
// anything else.
type EntityType string

const (
	// TypeContainer is a grouping entity (a downstream group / project).
	TypeContainer EntityType = "container"
	// TypeLeaf is an entity that belongs to a container or to another leaf
	// (a downstream todo / task).
	TypeLeaf EntityType = "leaf"
)

// IsValid returns true if the type is one of the defined constants.
func (t EntityType) IsValid() bool {
	switch t {
	case TypeContainer, TypeLeaf:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t EntityType) String() string {
	return string(t)
}

// Item is one entity to create within a batch.
type Item struct {
	TempID       string
	Type         EntityType
	Name         string
	ParentTempID string
	Payload      Payload
}

// HasParent reports whether the item references a parent placeholder.
func (i *Item) HasParent() bool {
	return i.ParentTempID != ""
}

// Validate checks the shape of a single item. Cross-item rules (uniqueness,
// parent existence, cycles) are enforced by NewGraph.
// Returns a *domain.ValidationError with per-field details, or nil.
func (i *Item) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(i.TempID) == "" {
		fields["temp_id"] = msgRequired
	}
	if !i.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", i.Type)
	}
	if strings.TrimSpace(i.Name) == "" {
		fields["name"] = msgRequired
	}
	if i.Type == TypeContainer && i.HasParent() {
		fields["parent_temp_id"] = "containers cannot have a parent"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
