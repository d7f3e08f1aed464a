// Package todo implements the Anti-Corruption Layer translators for the
// downstream TODO API's todo resources, which are the leaves of a batch.
package todo

// TodoDTO matches the downstream Todo schema.
// Ids are int64 on the wire.
type TodoDTO struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	Category        string `json:"category"`
	ProgressPercent int64  `json:"progress_percent"`
	Flagged         bool   `json:"flagged"`
	Note            string `json:"note"`
	GroupID         *int64 `json:"group_id,omitempty"`
	ParentID        *int64 `json:"parent_id,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// CreateTodoRequestDTO matches the downstream CreateTodoRequest schema.
// A todo belongs to a group, to a parent todo, or to neither.
type CreateTodoRequestDTO struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Status          string `json:"status,omitempty"`
	Category        string `json:"category,omitempty"`
	ProgressPercent int64  `json:"progress_percent,omitempty"`
	Flagged         bool   `json:"flagged,omitempty"`
	Note            string `json:"note,omitempty"`
	GroupID         *int64 `json:"group_id,omitempty"`
	ParentID        *int64 `json:"parent_id,omitempty"`
}
