// Package batch models a hierarchical batch of entities that reference each
// other through client-chosen placeholder ids (temp ids) before the external
// system has assigned real ids.
//
// The package is pure domain logic with no I/O:
//
//	graph, err := batch.NewGraph(items)   // validate: duplicates, unknown parents, cycles
//	order, err := graph.CreationOrder()   // parents strictly before children
//
//	res := batch.NewResolver()            // one per batch, never shared
//	res.Register("p1", batch.TypeContainer)
//	res.Resolve("p1", "P100")
//	id, ok := res.RealID("p1")            // "P100", true
//
// Structural problems are reported as *GraphError values that wrap both a
// specific sentinel (ErrDuplicateTempID, ErrUnknownParent, ErrCycle) and
// domain.ErrValidation.
package batch
