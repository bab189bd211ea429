// File: convert.go
// Role: conversion adapter — build a Model from any read-only source
// representation, enabling interchange between storage backends without
// coupling this container to any specific alternative.
package bqm

// Source is the minimal read-only contract a foreign model must expose for
// conversion: contiguous ids in [0, NumVariables()), per-variable linear
// bias, and an ascending-by-id neighborhood traversal covering exactly the
// variable's current interactions. *Model satisfies Source.
type Source[V ID, B Bias] interface {
	NumVariables() int
	Linear(v V) (B, error)
	VisitNeighborhood(v V, visit func(w V, bias B) bool) error
}

// offsetter is the optional upgrade interface for sources that carry a
// constant energy term; the offset is not part of the Source contract.
type offsetter[B Bias] interface {
	Offset() B
}

// FromSource builds a new Model with the same variable count, the same
// linear bias per variable, and the same neighborhoods as src. Neighborhood
// symmetry in src is trusted per the Source contract: each directed copy is
// inserted verbatim, so a symmetric source yields a symmetric model. When
// src also implements Offset() B, the offset is carried over.
// Allocation-only; errors can arise only from src violating its contract.
// Complexity: O(n + total interactions).
func FromSource[V ID, B Bias](src Source[V, B]) (*Model[V, B], error) {
	if src == nil {
		return nil, ErrNilSource
	}

	n := src.NumVariables()
	m := New[V, B](WithCapacity(n))
	for i := 0; i < n; i++ {
		m.AddVariable()
	}

	var v V
	for i := 0; i < n; i++ {
		v = V(i)

		bias, err := src.Linear(v)
		if err != nil {
			return nil, err
		}
		m.adj[i].linear = bias

		if err = src.VisitNeighborhood(v, func(w V, b B) bool {
			m.adj[i].nbrs.Set(Arc[V, B]{To: w, Bias: b})
			return true
		}); err != nil {
			return nil, err
		}
	}

	if o, ok := src.(offsetter[B]); ok {
		m.offset = o.Offset()
	}

	return m, nil
}
