package bqm_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlbqm/bqm"
)

// ringModel builds an n-variable ring with one extra chord per variable,
// giving every variable degree ~4.
func ringModel(n int) *bqm.Model[int, float64] {
	m := bqm.New[int, float64](bqm.WithCapacity(n))
	for i := 0; i < n; i++ {
		m.AddVariable()
	}
	for i := 0; i < n; i++ {
		_ = m.SetQuadratic(i, (i+1)%n, 1.0)
		_ = m.SetQuadratic(i, (i+n/2)%n, -1.0)
	}
	return m
}

// BenchmarkSetQuadratic measures symmetric dual-insert cost on a 10k-variable
// model with random endpoint pairs.
func BenchmarkSetQuadratic(b *testing.B) {
	const n = 10000
	m := ringModel(n)
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if u == v {
			v = (v + 1) % n
		}
		_ = m.SetQuadratic(u, v, float64(i))
	}
}

// BenchmarkQuadratic measures point lookup on a fixed-degree model.
func BenchmarkQuadratic(b *testing.B) {
	const n = 10000
	m := ringModel(n)
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := rng.Intn(n)
		_, _, _ = m.Quadratic(u, (u+1)%n)
	}
}

// BenchmarkEnergy measures whole-model evaluation on a 10k-variable ring.
func BenchmarkEnergy(b *testing.B) {
	const n = 10000
	m := ringModel(n)
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = float64(1 - 2*(i&1))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Energy(sample)
	}
}

// BenchmarkPopVariable measures stack shrinkage including neighbor cleanup.
func BenchmarkPopVariable(b *testing.B) {
	const n = 10000
	b.StopTimer()
	for i := 0; i < b.N; i++ {
		m := ringModel(n)
		b.StartTimer()
		for m.NumVariables() > 0 {
			_, _ = m.PopVariable()
		}
		b.StopTimer()
	}
}
