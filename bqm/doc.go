// Package bqm provides a sparse, symmetric adjacency-map container for
// Binary Quadratic Models.
//
// A Model[V, B] holds:
//
//   - a dense linear-bias store: one B per variable, indexed by contiguous
//     zero-based ids of type V;
//   - a neighborhood store: one ordered map per variable (a B-tree keyed by
//     neighbor id) mapping neighbor → quadratic bias.
//
// Both stores are co-located per variable, so variable i owns its linear
// bias and its neighbor map as a single record. Every interaction {u,v} is
// stored twice — once from each endpoint — and the two copies are kept
// identical by construction: SetQuadratic, AddQuadratic, and
// RemoveInteraction are the only mutation entry points and always update
// both sides.
//
// Core guarantees:
//
//   - Contiguous ids: AddVariable appends at the end of the id range and
//     PopVariable removes only the highest id, so ids never have holes.
//   - Symmetry: Quadratic(u,v) and Quadratic(v,u) always agree.
//   - No self-loops: u never appears in its own neighborhood.
//   - Ordered traversal: VisitNeighborhood and Neighbors walk ascending by
//     neighbor id.
//
// Point operations cost O(log degree); Degree, Linear, and SetLinear are
// O(1); NumInteractions, Energy, and FromSource are linear in model size.
//
// Error policy: out-of-range ids, coinciding interaction endpoints, and
// PopVariable on an empty model are caller errors reported via sentinels
// (ErrVariableOutOfRange, ErrSelfLoop, ErrEmptyModel) matched with
// errors.Is. A missing interaction is never an error — Quadratic and
// RemoveInteraction report absence through their boolean returns.
//
// Concurrency: none. A Model is owned by one logical thread of control at a
// time; no operation blocks or suspends. Callers that share an instance
// provide their own synchronization.
//
// Interchange: FromSource builds a Model from anything satisfying the
// minimal read-only Source contract, and *Model satisfies Source itself,
// so models round-trip losslessly between representations.
package bqm
