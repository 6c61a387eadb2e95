// SPDX-License-Identifier: MIT
// Package: jcsim/mutation
//
// mutation.go — random point substitutions with replacement.
//
// Contract:
//   • The input sequence is never modified; Apply works on a clone.
//   • Each round draws the site, then the replacement; both uniform.
//   • Silent and repeated hits are allowed and counted, never redrawn.

package mutation

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/jcsim/alphabet"
	"github.com/katalvlaran/jcsim/sequence"
)

var (
	// ErrNegativeSubstitutions indicates numSubs < 0. It is never silently
	// treated as zero rounds.
	ErrNegativeSubstitutions = errors.New("mutation: negative substitution count")

	// ErrEmptySequence indicates numSubs > 0 on a sequence with no sites.
	ErrEmptySequence = errors.New("mutation: no sites to substitute")
)

const (
	methodApply  = "Apply"
	methodMutate = "Mutate"
)

// replacements is the fixed substitution alphabet.
var replacements = alphabet.MustLookup(alphabet.Nucleic)

// Report breaks down one Apply call.
type Report struct {
	// Substitutions is the number of rounds performed (numSubs).
	Substitutions int
	// Silent counts rounds whose replacement equaled the symbol already at the site.
	Silent int
	// RepeatedSites counts rounds that hit a site already hit in an earlier round.
	RepeatedSites int
	// Hamming is the distance between the original and the final mutant.
	Hamming int
}

// Apply performs numSubs substitution rounds on a copy of seq and returns
// the mutant together with a Report. seq itself is never modified.
//
// Each round consumes two values from rng: the site, then the replacement.
//
// Errors:
//   - ErrNegativeSubstitutions — numSubs < 0.
//   - sequence.ErrNeedRandSource — rng is nil.
//   - ErrEmptySequence         — numSubs > 0 and seq is empty.
//
// Complexity: O(n + numSubs) time, O(n) memory for the mutant and hit set.
func Apply(rng *rand.Rand, seq sequence.Sequence, numSubs int) (sequence.Sequence, Report, error) {
	if numSubs < 0 {
		return nil, Report{}, fmt.Errorf("%s: numSubs=%d: %w", methodApply, numSubs, ErrNegativeSubstitutions)
	}
	if rng == nil {
		return nil, Report{}, fmt.Errorf("%s: %w", methodApply, sequence.ErrNeedRandSource)
	}
	n := seq.Len()
	if n == 0 && numSubs > 0 {
		return nil, Report{}, fmt.Errorf("%s: numSubs=%d: %w", methodApply, numSubs, ErrEmptySequence)
	}

	mutant := seq.Clone()
	rep := Report{Substitutions: numSubs}
	hit := make([]bool, n) // sites touched by an earlier round
	k := replacements.Len()
	for r := 0; r < numSubs; r++ {
		// 1) site, then 2) replacement; the order fixes the rng stream.
		pos := rng.Intn(n)
		sym := replacements[rng.Intn(k)]

		// 3) bookkeeping before the write, against the current symbol.
		if hit[pos] {
			rep.RepeatedSites++
		}
		hit[pos] = true
		if mutant[pos] == sym {
			rep.Silent++
		}
		mutant[pos] = sym
	}

	// Observed distance: back-mutations and silent rounds are invisible here.
	d, err := sequence.Hamming(seq, mutant)
	if err != nil {
		// unreachable: mutant is a same-length clone
		return nil, Report{}, fmt.Errorf("%s: %w", methodApply, err)
	}
	rep.Hamming = d

	return mutant, rep, nil
}

// Mutate is Apply reduced to the observed Hamming distance between seq and
// its mutant. Mutate(rng, s, 0) is always 0.
// Complexity: as Apply.
func Mutate(rng *rand.Rand, seq sequence.Sequence, numSubs int) (int, error) {
	_, rep, err := Apply(rng, seq, numSubs)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodMutate, err)
	}

	return rep.Hamming, nil
}
