package batch

import "fmt"

// Node wraps one Item with its edges. Dependencies holds the parent temp id
// (at most one); Dependents holds the children in input order.
type Node struct {
	Item         Item
	Dependencies []string
	Dependents   []string
}

func (n *Node) parent() string {
	if len(n.Dependencies) == 0 {
		return ""
	}
	return n.Dependencies[0]
}

// Graph is the validated dependency structure of one batch. It is built
// once by NewGraph and not modified afterwards.
type Graph struct {
	nodes map[string]*Node
	order []string
}

// Stats summarizes the shape of a graph. MaxDepth counts parent edges on the
// longest chain, so a lone root has depth 0.
type Stats struct {
	TotalItems int
	RootCount  int
	MaxDepth   int
	ByType     map[EntityType]int
}

// NewGraph builds and validates the graph for items. It fails without
// returning a partial graph on the first duplicate temp id, the first
// reference to an unknown parent, or any cycle.
func NewGraph(items []Item) (*Graph, error) {
	g, err := buildGraph(items)
	if err != nil {
		return nil, err
	}
	if err := g.validateAcyclic(); err != nil {
		return nil, err
	}
	return g, nil
}

// buildGraph creates nodes and edges without checking for cycles.
func buildGraph(items []Item) (*Graph, error) {
	g := &Graph{
		nodes: make(map[string]*Node, len(items)),
		order: make([]string, 0, len(items)),
	}

	for i := range items {
		id := items[i].TempID
		if _, ok := g.nodes[id]; ok {
			return nil, duplicateError(id)
		}
		g.nodes[id] = &Node{Item: items[i]}
		g.order = append(g.order, id)
	}

	for _, id := range g.order {
		n := g.nodes[id]
		if !n.Item.HasParent() {
			continue
		}
		parent, ok := g.nodes[n.Item.ParentTempID]
		if !ok {
			return nil, unknownParentError(id, n.Item.ParentTempID)
		}
		n.Dependencies = append(n.Dependencies, parent.Item.TempID)
		parent.Dependents = append(parent.Dependents, id)
	}

	return g, nil
}

// validateAcyclic walks every node; the first cycle found is returned with
// its full path.
func (g *Graph) validateAcyclic() error {
	visited := make(map[string]bool, len(g.order))
	for _, id := range g.order {
		if err := g.visit(id, visited, nil); err != nil {
			return err
		}
	}
	return nil
}

// visit performs the depth-first walk from id through its dependencies and
// calls emit for every node it finishes, dependencies first. Because a node
// has at most one dependency the walk is a climb up the parent chain, kept
// on an explicit path rather than the call stack. A node met again while
// still on the path closes a cycle.
func (g *Graph) visit(id string, visited map[string]bool, emit func(*Node)) error {
	inProgress := make(map[string]bool)
	var path []string

	for cur := id; cur != "" && !visited[cur]; cur = g.nodes[cur].parent() {
		if inProgress[cur] {
			return cycleError(closeCycle(path, cur))
		}
		inProgress[cur] = true
		path = append(path, cur)
	}

	for i := len(path) - 1; i >= 0; i-- {
		visited[path[i]] = true
		if emit != nil {
			emit(g.nodes[path[i]])
		}
	}
	return nil
}

// closeCycle cuts the path down to the loop that starts at repeat and
// appends repeat again to close it.
func closeCycle(path []string, repeat string) []string {
	for i, id := range path {
		if id == repeat {
			loop := make([]string, 0, len(path)-i+1)
			loop = append(loop, path[i:]...)
			return append(loop, repeat)
		}
	}
	return []string{repeat, repeat}
}

// CreationOrder returns the items so that every parent comes strictly
// before its children. Ties keep input order, so the result is
// deterministic. It fails only if the graph contains a cycle, which means it
// was not built through NewGraph.
func (g *Graph) CreationOrder() ([]Item, error) {
	visited := make(map[string]bool, len(g.order))
	out := make([]Item, 0, len(g.order))

	for _, id := range g.order {
		err := g.visit(id, visited, func(n *Node) {
			out = append(out, n.Item)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrGraphNotValidated, err)
		}
	}
	return out, nil
}

// Roots returns the items without a parent reference, in input order.
func (g *Graph) Roots() []Item {
	var roots []Item
	for _, id := range g.order {
		if n := g.nodes[id]; !n.Item.HasParent() {
			roots = append(roots, n.Item)
		}
	}
	return roots
}

// Children returns the immediate dependents of tempID in input order, or nil
// if tempID is unknown or has no children.
func (g *Graph) Children(tempID string) []Item {
	n, ok := g.nodes[tempID]
	if !ok || len(n.Dependents) == 0 {
		return nil
	}
	children := make([]Item, len(n.Dependents))
	for i, id := range n.Dependents {
		children[i] = g.nodes[id].Item
	}
	return children
}

// Node returns the node for tempID.
func (g *Graph) Node(tempID string) (*Node, bool) {
	n, ok := g.nodes[tempID]
	return n, ok
}

// Len returns the number of items in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// Stats computes sizing information for logging and reporting.
func (g *Graph) Stats() Stats {
	s := Stats{
		TotalItems: len(g.order),
		ByType:     make(map[EntityType]int, 2),
	}

	depth := make(map[string]int, len(g.order))
	visited := make(map[string]bool, len(g.order))
	for _, id := range g.order {
		// Nodes on a cycle are skipped; NewGraph never returns such a graph.
		_ = g.visit(id, visited, func(n *Node) {
			d := 0
			if p := n.parent(); p != "" {
				d = depth[p] + 1
			} else {
				s.RootCount++
			}
			depth[n.Item.TempID] = d
			s.MaxDepth = max(s.MaxDepth, d)
			s.ByType[n.Item.Type]++
		})
	}
	return s
}
