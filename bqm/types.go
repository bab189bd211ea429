// Package bqm defines the adjacency-map Binary Quadratic Model container,
// its generic type parameters, and sentinel errors.
package bqm

import (
	"errors"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Sentinel errors for bqm operations.
var (
	// ErrVariableOutOfRange indicates a variable id outside [0, NumVariables()).
	ErrVariableOutOfRange = errors.New("bqm: variable id out of range")
	// ErrSelfLoop indicates an interaction whose endpoints coincide.
	ErrSelfLoop = errors.New("bqm: interaction endpoints must be distinct")
	// ErrEmptyModel indicates PopVariable was called on a model with no variables.
	ErrEmptyModel = errors.New("bqm: model has no variables")
	// ErrSampleLength indicates a sample whose length differs from NumVariables().
	ErrSampleLength = errors.New("bqm: sample length does not match variable count")
	// ErrNilSource indicates a nil source was passed to FromSource.
	ErrNilSource = errors.New("bqm: source model is nil")
)

// ID constrains the variable-id type parameter: any integer type, usable
// as both a dense slice index and an ordered map key.
type ID interface {
	constraints.Integer
}

// Bias constrains the bias type parameter: any integer or floating-point
// scalar with the usual assignment, comparison, and arithmetic semantics.
type Bias interface {
	constraints.Integer | constraints.Float
}

// Arc is one entry of a variable's neighborhood: the neighbor id and the
// quadratic bias of the interaction. The same logical interaction {u,v}
// appears as Arc{v,b} in u's neighborhood and Arc{u,b} in v's.
type Arc[V ID, B Bias] struct {
	// To is the neighbor variable id.
	To V
	// Bias is the quadratic bias of the interaction.
	Bias B
}

// record co-locates everything variable i owns: its linear bias and its
// neighbor map. Records live in Model.adj at index i.
type record[V ID, B Bias] struct {
	linear B
	nbrs   *btree.BTreeG[Arc[V, B]]
}

// Model is a sparse, symmetric BQM container: a dense linear-bias store and
// one ordered neighbor map per variable, both indexed by a contiguous,
// zero-based variable id space.
//
// Invariants maintained by construction:
//
//  1. Variable ids form the contiguous range [0, NumVariables()); ids never
//     have holes because the only removal primitive is PopVariable.
//  2. Symmetry: {u,v} appears in u's neighborhood iff it appears in v's,
//     with the identical bias. No API can update one side alone.
//  3. No self-loops: SetQuadratic(v, v, b) is rejected with ErrSelfLoop.
//
// Model is single-threaded by design: no internal locking, no atomics.
// Callers sharing an instance across goroutines must synchronize externally.
type Model[V ID, B Bias] struct {
	adj    []record[V, B]
	offset B
}

// Option configures a Model at construction time.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-allocates room for n variable records, avoiding
// re-allocation during bulk construction. It does not add variables.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// lessArc orders neighborhood entries ascending by neighbor id. The bias is
// deliberately not part of the key: each neighbor appears at most once.
func lessArc[V ID, B Bias](a, b Arc[V, B]) bool { return a.To < b.To }

// newNeighbors allocates one ordered neighbor map. Locks are disabled: the
// container's concurrency contract is "exclusive single-threaded ownership",
// so per-tree locking would be pure overhead.
func newNeighbors[V ID, B Bias]() *btree.BTreeG[Arc[V, B]] {
	return btree.NewBTreeGOptions(lessArc[V, B], btree.Options{NoLocks: true})
}

// New creates an empty Model with zero variables.
// Complexity: O(1).
func New[V ID, B Bias](opts ...Option) *Model[V, B] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Model[V, B]{adj: make([]record[V, B], 0, cfg.capacity)}
}

// checkVariable validates that v is a live variable id.
func (m *Model[V, B]) checkVariable(v V) error {
	if v < 0 || int(v) >= len(m.adj) {
		return ErrVariableOutOfRange
	}
	return nil
}

// checkPair validates an interaction endpoint pair: both ids live, u != v.
func (m *Model[V, B]) checkPair(u, v V) error {
	if err := m.checkVariable(u); err != nil {
		return err
	}
	if err := m.checkVariable(v); err != nil {
		return err
	}
	if u == v {
		return ErrSelfLoop
	}
	return nil
}
