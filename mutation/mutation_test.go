package mutation_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/jcsim/alphabet"
	"github.com/katalvlaran/jcsim/mutation"
	"github.com/katalvlaran/jcsim/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSeq(t *testing.T, rng *rand.Rand, n int) sequence.Sequence {
	t.Helper()
	s, err := sequence.Generate(rng, n, alphabet.MustLookup(alphabet.Nucleic))
	require.NoError(t, err)

	return s
}

// TestMutate_ZeroSubstitutions verifies that zero rounds never change the sequence.
func TestMutate_ZeroSubstitutions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		s := randomSeq(t, rng, 1+rng.Intn(100))
		d, err := mutation.Mutate(rng, s, 0)
		require.NoError(t, err)
		assert.Zero(t, d)
	}

	d, err := mutation.Mutate(rng, sequence.Sequence{}, 0)
	require.NoError(t, err)
	assert.Zero(t, d)
}

// TestMutate_InputUntouched ensures the original sequence is not modified.
func TestMutate_InputUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	s := randomSeq(t, rng, 60)
	before := s.Clone()

	mutant, rep, err := mutation.Apply(rng, s, 200)
	require.NoError(t, err)
	assert.Equal(t, before, s)
	assert.Equal(t, s.Len(), mutant.Len())

	d, err := sequence.Hamming(s, mutant)
	require.NoError(t, err)
	assert.Equal(t, d, rep.Hamming)
}

// TestMutate_Bounds checks 0 <= d <= min(numSubs, len) and that only hit
// sites can differ.
func TestMutate_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, subs := range []int{1, 5, 20, 50, 500} {
		s := randomSeq(t, rng, 50)
		_, rep, err := mutation.Apply(rng, s, subs)
		require.NoError(t, err)

		assert.Equal(t, subs, rep.Substitutions)
		assert.GreaterOrEqual(t, rep.Hamming, 0)
		assert.LessOrEqual(t, rep.Hamming, subs)
		assert.LessOrEqual(t, rep.Hamming, s.Len())
		distinct := rep.Substitutions - rep.RepeatedSites
		assert.LessOrEqual(t, rep.Hamming, distinct)
	}
}

// TestApply_SilentAndRepeated shows both self-cancelling effects occur.
// A single-site sequence makes every round after the first a repeat, and
// about a quarter of rounds silent.
func TestApply_SilentAndRepeated(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	_, rep, err := mutation.Apply(rng, sequence.FromString("A"), 4000)
	require.NoError(t, err)

	assert.Equal(t, 3999, rep.RepeatedSites)
	assert.InDelta(t, 1000, rep.Silent, 150)
	assert.LessOrEqual(t, rep.Hamming, 1)
}

// TestMutate_ReplacementsAreNucleic verifies the replacement alphabet is
// ACGT even when the input is proteic.
func TestMutate_ReplacementsAreNucleic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := sequence.FromString("WWWWWWWWWWWWWWWWWWWW")
	mutant, _, err := mutation.Apply(rng, s, 200)
	require.NoError(t, err)

	nucleic := alphabet.MustLookup(alphabet.Nucleic)
	for _, sym := range mutant {
		assert.True(t, sym == 'W' || nucleic.Contains(sym), "unexpected symbol %q", sym)
	}
}

// TestMutate_ExpectedDistance compares the empirical mean distance with the
// closed form L·3/4·(1-(1-1/L)^k) for this model.
func TestMutate_ExpectedDistance(t *testing.T) {
	const (
		length = 100
		subs   = 60
		trials = 4000
	)
	rng := rand.New(rand.NewSource(8))
	sum := 0
	for i := 0; i < trials; i++ {
		d, err := mutation.Mutate(rng, randomSeq(t, rng, length), subs)
		require.NoError(t, err)
		sum += d
	}
	mean := float64(sum) / trials
	want := length * 0.75 * (1 - math.Pow(1-1.0/length, subs))
	assert.InDelta(t, want, mean, 0.5)
	assert.Less(t, mean, float64(subs), "observed distance must lag the raw substitution count")
}

func TestMutate_Preconditions(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	s := sequence.FromString("ACGT")

	_, err := mutation.Mutate(rng, s, -1)
	assert.ErrorIs(t, err, mutation.ErrNegativeSubstitutions)

	_, err = mutation.Mutate(nil, s, 1)
	assert.ErrorIs(t, err, sequence.ErrNeedRandSource)

	_, err = mutation.Mutate(rng, sequence.Sequence{}, 1)
	assert.ErrorIs(t, err, mutation.ErrEmptySequence)
}

// TestApply_Deterministic verifies equal seeds give identical mutants.
func TestApply_Deterministic(t *testing.T) {
	s := sequence.FromString("ACGTACGTACGTACGTACGT")
	m1, r1, err := mutation.Apply(rand.New(rand.NewSource(11)), s, 15)
	require.NoError(t, err)
	m2, r2, err := mutation.Apply(rand.New(rand.NewSource(11)), s, 15)
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
	assert.Equal(t, r1, r2)
}
