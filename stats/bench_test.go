package stats_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/jcsim/stats"
)

func benchmarkVariance(b *testing.B, n int, fn func([]float64) (float64, error)) {
	rng := rand.New(rand.NewSource(1))
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = rng.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(sample); err != nil {
			b.Fatalf("variance failed: %v", err)
		}
	}
}

// BenchmarkVariance_Welford10k benchmarks the single-pass estimator.
func BenchmarkVariance_Welford10k(b *testing.B) {
	benchmarkVariance(b, 10000, stats.Variance[float64])
}

// BenchmarkVariance_TwoPass10k benchmarks the reference estimator.
func BenchmarkVariance_TwoPass10k(b *testing.B) {
	benchmarkVariance(b, 10000, stats.TwoPassVariance[float64])
}
