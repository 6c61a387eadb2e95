package experiment_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/jcsim/alphabet"
	"github.com/katalvlaran/jcsim/experiment"
	"github.com/katalvlaran/jcsim/jc69"
	"github.com/katalvlaran/jcsim/mutation"
	"github.com/katalvlaran/jcsim/sequence"
	"github.com/katalvlaran/jcsim/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunTrials_Shape checks the count and range of the returned sample.
func TestRunTrials_Shape(t *testing.T) {
	sample, err := experiment.RunTrials(rand.New(rand.NewSource(1)), 50, 5, 500)
	require.NoError(t, err)
	require.Len(t, sample, 500)
	for i, d := range sample {
		assert.GreaterOrEqual(t, d, 0, "trial %d", i)
		assert.LessOrEqual(t, d, 5, "trial %d", i)
		assert.LessOrEqual(t, d, 50, "trial %d", i)
	}
}

func TestRunTrials_ZeroSubstitutions(t *testing.T) {
	sample, err := experiment.RunTrials(rand.New(rand.NewSource(2)), 30, 0, 100)
	require.NoError(t, err)
	for _, d := range sample {
		assert.Zero(t, d)
	}
}

// TestRunTrials_MeanMatchesModel compares the sample mean with the closed form.
func TestRunTrials_MeanMatchesModel(t *testing.T) {
	sample, err := experiment.RunTrials(rand.New(rand.NewSource(3)), 100, 40, 3000)
	require.NoError(t, err)

	m, err := stats.Mean(sample)
	require.NoError(t, err)
	want, err := jc69.ExpectedHamming(40, 100)
	require.NoError(t, err)
	assert.InDelta(t, want, m, 0.5)
}

func TestRunTrials_Deterministic(t *testing.T) {
	a, err := experiment.RunTrials(rand.New(rand.NewSource(4)), 20, 7, 50)
	require.NoError(t, err)
	b, err := experiment.RunTrials(rand.New(rand.NewSource(4)), 20, 7, 50)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunTrials_Preconditions(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	_, err := experiment.RunTrials(rng, 0, 1, 10)
	assert.ErrorIs(t, err, experiment.ErrBadLength)

	_, err = experiment.RunTrials(rng, 10, 1, 0)
	assert.ErrorIs(t, err, experiment.ErrBadTrialCount)

	_, err = experiment.RunTrials(rng, 10, -3, 10)
	assert.ErrorIs(t, err, mutation.ErrNegativeSubstitutions)

	_, err = experiment.RunTrials(nil, 10, 1, 10)
	assert.ErrorIs(t, err, sequence.ErrNeedRandSource)
}

// TestNilRand_OneSentinel checks that a nil rng surfaces as the same
// sentinel from every layer that accepts one.
func TestNilRand_OneSentinel(t *testing.T) {
	_, genErr := sequence.Generate(nil, 4, alphabet.MustLookup(alphabet.Nucleic))
	_, mutErr := mutation.Mutate(nil, sequence.FromString("ACGT"), 1)
	_, runErr := experiment.RunTrials(nil, 4, 1, 1)

	for _, err := range []error{genErr, mutErr, runErr} {
		require.Error(t, err)
		assert.ErrorIs(t, err, sequence.ErrNeedRandSource)
	}
}
