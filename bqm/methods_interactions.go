// File: methods_interactions.go
// Role: symmetric interaction (quadratic-bias) store.
//
// One logical interaction {u,v} is stored as two physical copies: Arc{v,b}
// in u's neighborhood and Arc{u,b} in v's. Every mutation entry point
// updates both copies together; no API can touch one side alone.
package bqm

// Quadratic looks up the quadratic bias of interaction {u,v}. The second
// return reports presence: a missing interaction is not an error, it yields
// (0, false, nil). Endpoint preconditions (both ids live, u != v) are still
// checked and reported via the error.
// Complexity: O(log degree(u)).
func (m *Model[V, B]) Quadratic(u, v V) (B, bool, error) {
	var zero B
	if err := m.checkPair(u, v); err != nil {
		return zero, false, err
	}

	a, ok := m.adj[u].nbrs.Get(Arc[V, B]{To: v})
	if !ok {
		return zero, false, nil
	}

	return a.Bias, true, nil
}

// SetQuadratic inserts or overwrites the interaction {u,v} with the given
// bias, updating both symmetric copies. A nil error means both sides hold
// the new value.
// Complexity: O(log degree) per side.
func (m *Model[V, B]) SetQuadratic(u, v V, bias B) error {
	if err := m.checkPair(u, v); err != nil {
		return err
	}

	m.adj[u].nbrs.Set(Arc[V, B]{To: v, Bias: bias})
	m.adj[v].nbrs.Set(Arc[V, B]{To: u, Bias: bias})

	return nil
}

// AddQuadratic accumulates delta onto the interaction {u,v}, creating it
// when absent. Both symmetric copies end up identical.
// Complexity: O(log degree) per side.
func (m *Model[V, B]) AddQuadratic(u, v V, delta B) error {
	if err := m.checkPair(u, v); err != nil {
		return err
	}

	bias := delta
	if a, ok := m.adj[u].nbrs.Get(Arc[V, B]{To: v}); ok {
		bias += a.Bias
	}
	m.adj[u].nbrs.Set(Arc[V, B]{To: v, Bias: bias})
	m.adj[v].nbrs.Set(Arc[V, B]{To: u, Bias: bias})

	return nil
}

// RemoveInteraction deletes the interaction {u,v} from both neighborhoods
// if present, and reports whether it existed.
// Complexity: O(log degree) per side.
func (m *Model[V, B]) RemoveInteraction(u, v V) (bool, error) {
	if err := m.checkPair(u, v); err != nil {
		return false, err
	}

	if _, ok := m.adj[u].nbrs.Delete(Arc[V, B]{To: v}); !ok {
		return false, nil
	}
	m.adj[v].nbrs.Delete(Arc[V, B]{To: u})

	return true, nil
}

// NumInteractions returns the number of distinct interactions. It sums all
// neighborhood sizes and halves the total: symmetry guarantees every
// interaction is counted exactly once from each endpoint.
// Complexity: O(n).
func (m *Model[V, B]) NumInteractions() int {
	count := 0
	for i := range m.adj {
		count += m.adj[i].nbrs.Len()
	}

	return count / 2
}
