// File: methods_variables.go
// Role: variable lifecycle and linear-bias store.
//
// Lifecycle contract:
//   - AddVariable appends at the end of the id range.
//   - PopVariable removes only the highest id (stack-like shrinkage), so the
//     contiguous-id invariant holds without any renumbering.
package bqm

// AddVariable appends one disconnected variable with a zero linear bias and
// returns its id, which equals the previous NumVariables().
// Complexity: O(1) amortized. Never fails.
func (m *Model[V, B]) AddVariable() V {
	m.adj = append(m.adj, record[V, B]{nbrs: newNeighbors[V, B]()})

	return V(len(m.adj) - 1)
}

// PopVariable removes the variable with the highest id: it first purges that
// id from every neighbor's map, then discards the variable's own record.
// It returns the new variable count (not the removed id).
// Returns ErrEmptyModel when the model has no variables.
// Complexity: O(d·log d) where d is the removed variable's degree.
func (m *Model[V, B]) PopVariable() (int, error) {
	if len(m.adj) == 0 {
		return 0, ErrEmptyModel
	}

	last := V(len(m.adj) - 1)
	rec := m.adj[last]

	// Erase the doomed id from each neighbor's map. Iteration walks the
	// removed variable's own tree; deletions touch the neighbors' trees only.
	rec.nbrs.Scan(func(a Arc[V, B]) bool {
		m.adj[a.To].nbrs.Delete(Arc[V, B]{To: last})
		return true
	})

	m.adj = m.adj[:last]

	return len(m.adj), nil
}

// NumVariables returns the current variable count.
// Complexity: O(1).
func (m *Model[V, B]) NumVariables() int {
	return len(m.adj)
}

// Degree returns the size of v's neighborhood.
// Complexity: O(1).
func (m *Model[V, B]) Degree(v V) (int, error) {
	if err := m.checkVariable(v); err != nil {
		return 0, err
	}

	return m.adj[v].nbrs.Len(), nil
}

// Linear returns the linear bias attached to variable v.
// Complexity: O(1).
func (m *Model[V, B]) Linear(v V) (B, error) {
	if err := m.checkVariable(v); err != nil {
		var zero B
		return zero, err
	}

	return m.adj[v].linear, nil
}

// SetLinear overwrites the linear bias of variable v.
// Complexity: O(1).
func (m *Model[V, B]) SetLinear(v V, bias B) error {
	if err := m.checkVariable(v); err != nil {
		return err
	}
	m.adj[v].linear = bias

	return nil
}

// AddLinear accumulates delta onto the linear bias of variable v.
// Complexity: O(1).
func (m *Model[V, B]) AddLinear(v V, delta B) error {
	if err := m.checkVariable(v); err != nil {
		return err
	}
	m.adj[v].linear += delta

	return nil
}
