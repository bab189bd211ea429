// File: impl_random_sparse.go — RandomSparse(n, p) constructor.
//
// Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
// independently with probability p. Linear and quadratic biases are drawn
// from cfg's bias function.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVariables).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - WithSeed required when 0 < p < 1 (else ErrNeedRandSource);
//     p == 0 and p == 1 are deterministic edge sets and also require the
//     seed for the bias draws, except the p == 0, zero-interaction case.
//
// Determinism:
//   - RNG consumption order is fixed: one linear draw per variable (i asc),
//     then one trial per pair (i asc, j > i asc), then one bias draw per
//     accepted pair. Fixed seed ⇒ identical model.
//
// Complexity: O(n) variables + O(n²) trials.
package bqmgen

import (
	"fmt"

	"github.com/katalvlaran/lvlbqm/bqm"
)

const (
	minRandomSparseVariables = 1
	probMin                  = 0.0
	probMax                  = 1.0
)

// RandomSparse returns a Constructor that appends n variables and samples an
// Erdős–Rényi-style interaction set with independent pair probability p.
func RandomSparse[V bqm.ID, B bqm.Bias](n int, p float64) Constructor[V, B] {
	return func(m *bqm.Model[V, B], cfg Config) error {
		if n < minRandomSparseVariables {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomSparseVariables, ErrTooFewVariables)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("RandomSparse: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
		}
		// The bias draws alone need the RNG; only the all-zero p=0 case can
		// run without one.
		if cfg.rng == nil && p > probMin {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		base := m.NumVariables()
		for i := 0; i < n; i++ {
			m.AddVariable()
		}

		var i, j int
		if cfg.rng != nil {
			// Linear draws first, i asc, to keep the RNG stream order stable.
			for i = base; i < base+n; i++ {
				if err := m.SetLinear(V(i), B(cfg.biasFn(cfg.rng))); err != nil {
					return fmt.Errorf("RandomSparse: SetLinear(%d): %w", i, err)
				}
			}
		}

		if p == probMin {
			// No interactions to sample.
			return nil
		}
		for i = base; i < base+n; i++ {
			for j = i + 1; j < base+n; j++ {
				if p < probMax && cfg.rng.Float64() > p {
					continue
				}
				if err := m.SetQuadratic(V(i), V(j), B(cfg.biasFn(cfg.rng))); err != nil {
					return fmt.Errorf("RandomSparse: SetQuadratic(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}
