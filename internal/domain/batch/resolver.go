package batch

import "fmt"

// MappingState is the lifecycle of one placeholder within a batch. The only
// legal transitions are registered->resolved and registered->failed.
type MappingState string

const (
	StateRegistered MappingState = "registered"
	StateResolved   MappingState = "resolved"
	StateFailed     MappingState = "failed"
)

// Mapping records what happened to one placeholder.
type Mapping struct {
	TempID string
	RealID string
	Type   EntityType
	State  MappingState
	Error  string
}

// CreatedEntity identifies something that exists downstream because of this
// batch.
type CreatedEntity struct {
	TempID string
	RealID string
	Type   EntityType
}

// Resolver is the placeholder-to-real-id table of a single batch. It is not
// safe for concurrent use; batches are processed sequentially and each owns
// its own Resolver.
type Resolver struct {
	entries map[string]*Mapping
	order   []string
}

// NewResolver returns an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{entries: make(map[string]*Mapping)}
}

// Register adds tempID in the registered state. Registration order is kept
// and drives CreatedIDs.
func (r *Resolver) Register(tempID string, typ EntityType) error {
	if _, ok := r.entries[tempID]; ok {
		return fmt.Errorf("registering %q: %w", tempID, ErrAlreadyRegistered)
	}
	r.entries[tempID] = &Mapping{TempID: tempID, Type: typ, State: StateRegistered}
	r.order = append(r.order, tempID)
	return nil
}

// Resolve records the real id the external system assigned to tempID.
func (r *Resolver) Resolve(tempID, realID string) error {
	m, err := r.settle(tempID)
	if err != nil {
		return err
	}
	m.RealID = realID
	m.State = StateResolved
	return nil
}

// MarkFailed records that creating tempID failed with msg.
func (r *Resolver) MarkFailed(tempID, msg string) error {
	m, err := r.settle(tempID)
	if err != nil {
		return err
	}
	m.Error = msg
	m.State = StateFailed
	return nil
}

func (r *Resolver) settle(tempID string) (*Mapping, error) {
	m, ok := r.entries[tempID]
	if !ok {
		return nil, fmt.Errorf("settling %q: %w", tempID, ErrNotRegistered)
	}
	if m.State != StateRegistered {
		return nil, fmt.Errorf("settling %q in state %s: %w", tempID, m.State, ErrInvalidTransition)
	}
	return m, nil
}

// RealID returns the real id for tempID once it is resolved.
func (r *Resolver) RealID(tempID string) (string, bool) {
	m, ok := r.entries[tempID]
	if !ok || m.State != StateResolved {
		return "", false
	}
	return m.RealID, true
}

// IsResolved reports whether tempID has a real id.
func (r *Resolver) IsResolved(tempID string) bool {
	_, ok := r.RealID(tempID)
	return ok
}

// Type returns the entity type tempID was registered with.
func (r *Resolver) Type(tempID string) (EntityType, bool) {
	m, ok := r.entries[tempID]
	if !ok {
		return "", false
	}
	return m.Type, true
}

// CreatedIDs lists every resolved entry in registration order. Reversing it
// yields children before their parents.
func (r *Resolver) CreatedIDs() []CreatedEntity {
	var out []CreatedEntity
	for _, id := range r.order {
		m := r.entries[id]
		if m.State == StateResolved {
			out = append(out, CreatedEntity{TempID: m.TempID, RealID: m.RealID, Type: m.Type})
		}
	}
	return out
}

// Mappings returns temp id to real id for resolved entries.
func (r *Resolver) Mappings() map[string]string {
	out := make(map[string]string)
	for id, m := range r.entries {
		if m.State == StateResolved {
			out[id] = m.RealID
		}
	}
	return out
}

// DetailedStatus returns a copy of every entry in registration order.
func (r *Resolver) DetailedStatus() []Mapping {
	out := make([]Mapping, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.entries[id])
	}
	return out
}

// CreatedCount returns the number of resolved entries.
func (r *Resolver) CreatedCount() int {
	return r.count(StateResolved)
}

// FailedCount returns the number of failed entries.
func (r *Resolver) FailedCount() int {
	return r.count(StateFailed)
}

func (r *Resolver) count(state MappingState) int {
	n := 0
	for _, m := range r.entries {
		if m.State == state {
			n++
		}
	}
	return n
}

// Len returns the number of registered placeholders in any state.
func (r *Resolver) Len() int {
	return len(r.order)
}
