// Package group implements the Anti-Corruption Layer translators for the
// downstream TODO API's group resources, which are the containers of a batch.
package group

// GroupDTO matches the downstream Group schema.
type GroupDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateGroupRequestDTO matches the downstream CreateGroupRequest schema.
type CreateGroupRequestDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
