package batch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-batch-service/internal/domain"
)

// Sentinel errors for errors.Is() checking. ErrDuplicateTempID,
// ErrUnknownParent and ErrCycle are structural: they are detected before any
// remote call and fail the whole batch.
var (
	ErrDuplicateTempID   = errors.New("duplicate temp id")
	ErrUnknownParent     = errors.New("unknown parent reference")
	ErrCycle             = errors.New("circular dependency")
	ErrGraphNotValidated = errors.New("graph was not validated")
	ErrAlreadyRegistered = errors.New("temp id already registered")
	ErrNotRegistered     = errors.New("temp id not registered")
	ErrInvalidTransition = errors.New("mapping already settled")
	ErrParentNotCreated  = errors.New("parent not yet created")
	ErrUnknownEntityType = errors.New("unknown entity type")
)

// GraphError describes a structural problem with a batch. TempIDs names the
// offending placeholders; Path is set for cycles and lists the full loop,
// starting and ending on the same id.
type GraphError struct {
	Kind    error
	TempIDs []string
	Path    []string
}

func (e *GraphError) Error() string {
	switch {
	case len(e.Path) > 0:
		return fmt.Sprintf("%s: %s", e.Kind.Error(), strings.Join(e.Path, " -> "))
	case len(e.TempIDs) > 0:
		return fmt.Sprintf("%s: %s", e.Kind.Error(), strings.Join(e.TempIDs, ", "))
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes both the specific kind and domain.ErrValidation.
func (e *GraphError) Unwrap() []error {
	return []error{e.Kind, domain.ErrValidation}
}

func duplicateError(tempID string) error {
	return &GraphError{Kind: ErrDuplicateTempID, TempIDs: []string{tempID}}
}

func unknownParentError(tempID, parent string) error {
	return &GraphError{Kind: ErrUnknownParent, TempIDs: []string{tempID, parent}}
}

func cycleError(path []string) error {
	return &GraphError{Kind: ErrCycle, TempIDs: uniqueIDs(path), Path: path}
}

// uniqueIDs returns the ids of a cycle path without the closing repeat.
func uniqueIDs(path []string) []string {
	seen := make(map[string]struct{}, len(path))
	out := make([]string, 0, len(path))
	for _, id := range path {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
