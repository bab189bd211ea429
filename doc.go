// Package lvlbqm is a sparse, symmetric weighted-graph container for
// Binary Quadratic Models (BQMs): variables carrying scalar linear biases,
// plus undirected pairwise interactions carrying scalar quadratic biases.
//
// The module is organized as focused subpackages:
//
//   - bqm    — the adjacency-map Model[V, B]: contiguous integer variable
//     ids, one ordered neighbor map per variable, O(log degree) point
//     lookup/update of any interaction, degree/neighborhood queries,
//     offset/scale/energy helpers, and a conversion adapter for building
//     a Model from any read-only source representation.
//   - bqmgen — deterministic model generators (Complete, RandomSparse)
//     for fixtures and benchmarks.
//
// lvlbqm performs no optimization, sampling, or solving, and owns no file
// format: it is the container layer that annealing-style samplers inspect
// and perturb. All containers are single-threaded by design; callers that
// share one instance across goroutines must synchronize externally.
//
// Quick start:
//
//	m := bqm.New[int, float64]()
//	u, v := m.AddVariable(), m.AddVariable()
//	_ = m.SetLinear(u, 1.5)
//	_ = m.SetQuadratic(u, v, -2.0)
//	e, _ := m.Energy([]float64{1, -1})
package lvlbqm
