// SPDX-License-Identifier: MIT
// Package: jcsim/sequence
//
// sequence.go — the Sequence type and uniform random generation.
//
// Contract:
//   • All randomness comes from the caller's *rand.Rand.
//   • Generate consumes exactly length values from rng.

package sequence

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/jcsim/alphabet"
)

const methodGenerate = "Generate"

// Sequence is an ordered, fixed-length list of single-byte symbols.
type Sequence []byte

// FromString wraps s as a Sequence (copying its bytes).
func FromString(s string) Sequence {
	return Sequence(s)
}

// Len returns the number of sites.
func (s Sequence) Len() int {
	return len(s)
}

// String renders the symbols in order.
func (s Sequence) String() string {
	return string(s)
}

// Clone returns an independent copy. The clone of an empty sequence is
// empty and non-nil.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Generate draws a sequence of the given length from a.
//
// Every position is an independent uniform draw rng.Intn(a.Len()), so
// symbols may repeat. length == 0 returns an empty sequence.
//
// Errors:
//   - ErrNegativeLength — length < 0.
//   - ErrEmptyAlphabet  — a has no symbols.
//   - ErrNeedRandSource — rng is nil.
//
// Determinism: for a fixed rng state the output is fixed; exactly length
// values are consumed from rng.
//
// Complexity: O(length) time and memory.
func Generate(rng *rand.Rand, length int, a alphabet.Alphabet) (Sequence, error) {
	if length < 0 {
		return nil, fmt.Errorf("%s: length=%d: %w", methodGenerate, length, ErrNegativeLength)
	}
	if a.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrEmptyAlphabet)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	// One Intn per site; the draw order is the site order.
	n := a.Len()
	out := make(Sequence, length)
	for i := range out {
		out[i] = a[rng.Intn(n)]
	}

	return out, nil
}
