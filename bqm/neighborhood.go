// File: neighborhood.go
// Role: ordered neighborhood traversal.
//
// Ordering is an observable contract: traversal is ascending by neighbor id.
// VisitNeighborhood is a live view — structurally mutating v's edge set
// (SetQuadratic/RemoveInteraction/PopVariable on an incident interaction)
// while a traversal is in progress invalidates the traversal. Neighbors
// returns a snapshot and has no such restriction.
package bqm

// VisitNeighborhood walks v's current neighborhood in ascending neighbor-id
// order, calling visit for each (neighbor, bias) pair. The walk stops early
// when visit returns false. The view is live, not a snapshot; do not mutate
// v's edge set from inside visit.
// Complexity: O(degree(v)).
func (m *Model[V, B]) VisitNeighborhood(v V, visit func(w V, bias B) bool) error {
	if err := m.checkVariable(v); err != nil {
		return err
	}

	m.adj[v].nbrs.Scan(func(a Arc[V, B]) bool {
		return visit(a.To, a.Bias)
	})

	return nil
}

// Neighbors returns a snapshot of v's neighborhood as a slice of arcs in
// ascending neighbor-id order. The slice is owned by the caller; later
// mutations of the model do not affect it.
// Complexity: O(degree(v)).
func (m *Model[V, B]) Neighbors(v V) ([]Arc[V, B], error) {
	if err := m.checkVariable(v); err != nil {
		return nil, err
	}

	out := make([]Arc[V, B], 0, m.adj[v].nbrs.Len())
	m.adj[v].nbrs.Scan(func(a Arc[V, B]) bool {
		out = append(out, a)
		return true
	})

	return out, nil
}
