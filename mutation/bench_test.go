package mutation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/jcsim/alphabet"
	"github.com/katalvlaran/jcsim/mutation"
	"github.com/katalvlaran/jcsim/sequence"
)

// benchmarkMutate runs Mutate on an n-site sequence with subs rounds.
func benchmarkMutate(b *testing.B, n, subs int) {
	rng := rand.New(rand.NewSource(1))
	s, err := sequence.Generate(rng, n, alphabet.MustLookup(alphabet.Nucleic))
	if err != nil {
		b.Fatalf("Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mutation.Mutate(rng, s, subs); err != nil {
			b.Fatalf("Mutate failed: %v", err)
		}
	}
}

func BenchmarkMutate_100x10(b *testing.B)   { benchmarkMutate(b, 100, 10) }
func BenchmarkMutate_100x90(b *testing.B)   { benchmarkMutate(b, 100, 90) }
func BenchmarkMutate_1000x500(b *testing.B) { benchmarkMutate(b, 1000, 500) }
