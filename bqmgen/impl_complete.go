// File: impl_complete.go — Complete(n, bias) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVariables): a complete model needs at least one pair.
//   - Adds n variables in ascending id order, all linear biases zero.
//   - Sets the uniform quadratic bias on every unordered pair {i,j}, i<j.
//   - Fully deterministic; no RNG involved.
//
// Complexity: O(n) variables + O(n²·log n) interactions.
package bqmgen

import (
	"fmt"

	"github.com/katalvlaran/lvlbqm/bqm"
)

const minCompleteVariables = 2

// Complete returns a Constructor that appends n variables and connects every
// pair with the given quadratic bias (the K_n interaction graph).
func Complete[V bqm.ID, B bqm.Bias](n int, bias B) Constructor[V, B] {
	return func(m *bqm.Model[V, B], _ Config) error {
		if n < minCompleteVariables {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVariables, ErrTooFewVariables)
		}

		base := m.NumVariables()
		for i := 0; i < n; i++ {
			m.AddVariable()
		}

		var i, j int
		for i = base; i < base+n; i++ {
			for j = i + 1; j < base+n; j++ {
				if err := m.SetQuadratic(V(i), V(j), bias); err != nil {
					return fmt.Errorf("Complete: SetQuadratic(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}
