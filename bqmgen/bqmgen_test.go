package bqmgen_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlbqm/bqmgen"
)

// TestComplete verifies K_n topology: n variables, n·(n-1)/2 interactions,
// uniform bias, degree n-1 everywhere.
func TestComplete(t *testing.T) {
	const n = 6
	m, err := bqmgen.Build[int, float64](nil, bqmgen.Complete[int, float64](n, 0.5))
	if err != nil {
		t.Fatalf("Build(Complete) error: %v", err)
	}

	if m.NumVariables() != n {
		t.Errorf("NumVariables = %d; want %d", m.NumVariables(), n)
	}
	if want := n * (n - 1) / 2; m.NumInteractions() != want {
		t.Errorf("NumInteractions = %d; want %d", m.NumInteractions(), want)
	}
	for v := 0; v < n; v++ {
		d, dErr := m.Degree(v)
		if dErr != nil {
			t.Fatalf("Degree(%d) error: %v", v, dErr)
		}
		if d != n-1 {
			t.Errorf("Degree(%d) = %d; want %d", v, d, n-1)
		}
	}
	b, ok, qErr := m.Quadratic(1, 4)
	if qErr != nil || !ok || b != 0.5 {
		t.Errorf("Quadratic(1,4) = (%v,%v,%v); want (0.5,true,nil)", b, ok, qErr)
	}
}

// TestComplete_TooFew rejects n < 2.
func TestComplete_TooFew(t *testing.T) {
	_, err := bqmgen.Build[int, float64](nil, bqmgen.Complete[int, float64](1, 1))
	if !errors.Is(err, bqmgen.ErrTooFewVariables) {
		t.Errorf("Build(Complete(1)) error = %v; want ErrTooFewVariables", err)
	}
}

// TestRandomSparse_Deterministic verifies the same seed yields an identical
// model: same interaction set, same biases, same linears.
func TestRandomSparse_Deterministic(t *testing.T) {
	const n = 40
	opts := []bqmgen.Option{bqmgen.WithSeed(7)}

	m1, err := bqmgen.Build[int, float64](opts, bqmgen.RandomSparse[int, float64](n, 0.3))
	if err != nil {
		t.Fatalf("Build #1 error: %v", err)
	}
	m2, err := bqmgen.Build[int, float64]([]bqmgen.Option{bqmgen.WithSeed(7)}, bqmgen.RandomSparse[int, float64](n, 0.3))
	if err != nil {
		t.Fatalf("Build #2 error: %v", err)
	}

	if m1.NumInteractions() != m2.NumInteractions() {
		t.Fatalf("interaction counts differ: %d vs %d", m1.NumInteractions(), m2.NumInteractions())
	}
	for v := 0; v < n; v++ {
		l1, _ := m1.Linear(v)
		l2, _ := m2.Linear(v)
		if l1 != l2 {
			t.Errorf("Linear(%d): %v vs %v", v, l1, l2)
		}
		a1, _ := m1.Neighbors(v)
		a2, _ := m2.Neighbors(v)
		if len(a1) != len(a2) {
			t.Fatalf("Degree(%d) differs: %d vs %d", v, len(a1), len(a2))
		}
		for i := range a1 {
			if a1[i] != a2[i] {
				t.Errorf("arc %d of variable %d: %+v vs %+v", i, v, a1[i], a2[i])
			}
		}
	}
}

// TestRandomSparse_Extremes covers the deterministic p=0 and p=1 edge sets.
func TestRandomSparse_Extremes(t *testing.T) {
	const n = 8

	// p = 0 needs no seed: no draws at all.
	empty, err := bqmgen.Build[int, float64](nil, bqmgen.RandomSparse[int, float64](n, 0))
	if err != nil {
		t.Fatalf("Build(p=0) error: %v", err)
	}
	if empty.NumInteractions() != 0 {
		t.Errorf("p=0 NumInteractions = %d; want 0", empty.NumInteractions())
	}

	// p = 1 draws biases, so it needs the seed, and yields K_n.
	full, err := bqmgen.Build[int, float64]([]bqmgen.Option{bqmgen.WithSeed(1)}, bqmgen.RandomSparse[int, float64](n, 1))
	if err != nil {
		t.Fatalf("Build(p=1) error: %v", err)
	}
	if want := n * (n - 1) / 2; full.NumInteractions() != want {
		t.Errorf("p=1 NumInteractions = %d; want %d", full.NumInteractions(), want)
	}
}

// TestRandomSparse_Errors validates the sentinel contract.
func TestRandomSparse_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []bqmgen.Option
		cons bqmgen.Constructor[int, float64]
		err  error
	}{
		{"TooFew", nil, bqmgen.RandomSparse[int, float64](0, 0.5), bqmgen.ErrTooFewVariables},
		{"BadProbLow", nil, bqmgen.RandomSparse[int, float64](4, -0.1), bqmgen.ErrInvalidProbability},
		{"BadProbHigh", nil, bqmgen.RandomSparse[int, float64](4, 1.1), bqmgen.ErrInvalidProbability},
		{"NoSeed", nil, bqmgen.RandomSparse[int, float64](4, 0.5), bqmgen.ErrNeedRandSource},
		{"NilConstructor", nil, nil, bqmgen.ErrNilConstructor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bqmgen.Build[int, float64](tc.opts, tc.cons)
			if !errors.Is(err, tc.err) {
				t.Errorf("Build error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestBuild_Compose verifies constructors apply in order over one model.
func TestBuild_Compose(t *testing.T) {
	m, err := bqmgen.Build[int, float64](
		[]bqmgen.Option{bqmgen.WithSeed(3)},
		bqmgen.Complete[int, float64](3, 1.0),
		bqmgen.RandomSparse[int, float64](2, 1),
	)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if m.NumVariables() != 5 {
		t.Errorf("NumVariables = %d; want 5", m.NumVariables())
	}
	// 3 interactions from K_3 plus the single pair of the second block.
	if m.NumInteractions() != 4 {
		t.Errorf("NumInteractions = %d; want 4", m.NumInteractions())
	}
	// The blocks are disjoint: no interaction crosses the boundary.
	var crossing bool
	_ = m.VisitNeighborhood(3, func(w int, _ float64) bool {
		if w < 3 {
			crossing = true
		}
		return true
	})
	if crossing {
		t.Error("unexpected interaction crossing generator blocks")
	}

	// WithBiasFn is honored.
	m2, err := bqmgen.Build[int, float64](
		[]bqmgen.Option{bqmgen.WithSeed(3), bqmgen.WithBiasFn(func(_ *rand.Rand) float64 { return 2 })},
		bqmgen.RandomSparse[int, float64](2, 1),
	)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	b, ok, _ := m2.Quadratic(0, 1)
	if !ok || b != 2 {
		t.Errorf("Quadratic(0,1) = (%v,%v); want (2,true)", b, ok)
	}
}
