// SPDX-License-Identifier: MIT
// Package: jcsim/experiment
//
// trials.go — repeated generate-mutate-measure trials.
//
// Contract:
//   • Trials draw serially from one rng; the output order is the draw order.

package experiment

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/jcsim/alphabet"
	"github.com/katalvlaran/jcsim/mutation"
	"github.com/katalvlaran/jcsim/sequence"
)

const methodRunTrials = "RunTrials"

var nucleic = alphabet.MustLookup(alphabet.Nucleic)

// RunTrials performs trialCount independent trials. Each trial draws a fresh
// nucleic sequence of the given length and records the Hamming distance
// produced by numSubs substitutions.
//
// The returned slice has exactly trialCount entries, each in [0, length].
// All randomness is drawn serially from rng.
//
// Errors:
//   - ErrBadLength      — length < 1.
//   - ErrBadTrialCount  — trialCount < 1.
//   - sequence.ErrNeedRandSource — rng is nil.
//   - mutation.ErrNegativeSubstitutions — numSubs < 0.
//
// Complexity: O(trialCount · (length + numSubs)) time, O(trialCount + length) memory.
func RunTrials(rng *rand.Rand, length, numSubs, trialCount int) ([]int, error) {
	if length < 1 {
		return nil, fmt.Errorf("%s: length=%d: %w", methodRunTrials, length, ErrBadLength)
	}
	if trialCount < 1 {
		return nil, fmt.Errorf("%s: trials=%d: %w", methodRunTrials, trialCount, ErrBadTrialCount)
	}
	if numSubs < 0 {
		return nil, fmt.Errorf("%s: numSubs=%d: %w", methodRunTrials, numSubs, mutation.ErrNegativeSubstitutions)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRunTrials, sequence.ErrNeedRandSource)
	}

	out := make([]int, trialCount)
	for i := range out {
		// Fresh ancestor per trial, then mutate it; both draw from rng.
		seq, err := sequence.Generate(rng, length, nucleic)
		if err != nil {
			return nil, fmt.Errorf("%s: trial %d: %w", methodRunTrials, i, err)
		}
		d, err := mutation.Mutate(rng, seq, numSubs)
		if err != nil {
			return nil, fmt.Errorf("%s: trial %d: %w", methodRunTrials, i, err)
		}
		out[i] = d
	}

	return out, nil
}
