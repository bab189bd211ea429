// File: methods_model.go
// Role: whole-model operations — offset, scaling, energy evaluation, cloning.
package bqm

// Offset returns the constant energy term of the model.
// Complexity: O(1).
func (m *Model[V, B]) Offset() B {
	return m.offset
}

// SetOffset overwrites the constant energy term.
// Complexity: O(1).
func (m *Model[V, B]) SetOffset(b B) {
	m.offset = b
}

// AddOffset accumulates delta onto the constant energy term.
// Complexity: O(1).
func (m *Model[V, B]) AddOffset(delta B) {
	m.offset += delta
}

// Scale multiplies the offset, every linear bias, and every quadratic bias
// by alpha. Symmetric copies stay identical because each is rewritten with
// the same scaled value.
// Complexity: O(n + E·log degree) where E is the interaction count.
func (m *Model[V, B]) Scale(alpha B) {
	m.offset *= alpha
	for i := range m.adj {
		m.adj[i].linear *= alpha

		// Snapshot first: rewriting entries during a Scan of the same tree
		// is not safe.
		arcs := m.adj[i].nbrs.Items()
		for _, a := range arcs {
			a.Bias *= alpha
			m.adj[i].nbrs.Set(a)
		}
	}
}

// Energy evaluates the model at the given sample (one value per variable,
// indexed by variable id):
//
//	E(s) = offset + Σ_v linear(v)·s[v] + Σ_{u<w} quadratic(u,w)·s[u]·s[w]
//
// Each interaction contributes once: the symmetric copy with the larger
// neighbor id is skipped during accumulation.
// Returns ErrSampleLength when len(sample) != NumVariables().
// Complexity: O(n + E).
func (m *Model[V, B]) Energy(sample []B) (B, error) {
	var zero B
	if len(sample) != len(m.adj) {
		return zero, ErrSampleLength
	}

	en := m.offset
	for i := range m.adj {
		en += m.adj[i].linear * sample[i]

		u := V(i)
		m.adj[i].nbrs.Scan(func(a Arc[V, B]) bool {
			if a.To < u {
				return true
			}
			en += a.Bias * sample[u] * sample[a.To]
			return true
		})
	}

	return en, nil
}

// Clone returns a deep-independent copy of the model. Neighborhood trees are
// duplicated via the B-tree's copy-on-write Copy, so cloning is cheap and
// subsequent mutations of either model never leak into the other.
// Complexity: O(n).
func (m *Model[V, B]) Clone() *Model[V, B] {
	out := &Model[V, B]{
		adj:    make([]record[V, B], len(m.adj)),
		offset: m.offset,
	}
	for i := range m.adj {
		out.adj[i] = record[V, B]{
			linear: m.adj[i].linear,
			nbrs:   m.adj[i].nbrs.Copy(),
		}
	}

	return out
}
