package experiment_test

import (
	"testing"

	"github.com/katalvlaran/jcsim/experiment"
)

// benchmarkSweep runs the reference 0..90 sweep with the given worker count.
func benchmarkSweep(b *testing.B, workers int) {
	counts := decade(90)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := experiment.Sweep(100, 200, counts,
			experiment.WithSeed(int64(i)), experiment.WithWorkers(workers)); err != nil {
			b.Fatalf("Sweep failed: %v", err)
		}
	}
}

func BenchmarkSweep_Serial(b *testing.B)    { benchmarkSweep(b, 1) }
func BenchmarkSweep_Parallel4(b *testing.B) { benchmarkSweep(b, 4) }
