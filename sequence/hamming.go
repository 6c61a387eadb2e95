// SPDX-License-Identifier: MIT
// Package: jcsim/sequence
//
// hamming.go — positional mismatch counts between equal-length sequences.
//
// Contract:
//   • Lengths are checked before any site is compared.
//   • Symbols compare by byte identity (case-sensitive).

package sequence

import "fmt"

const (
	methodHamming   = "Hamming"
	methodPDistance = "PDistance"
)

// Hamming returns the number of positions at which a and b hold different
// symbols. Symbols are compared by exact byte identity.
//
// Sequences of unequal length are rejected with ErrLengthMismatch before any
// position is inspected. Two empty sequences are at distance 0.
//
// Complexity: O(n) time, O(1) memory.
func Hamming(a, b Sequence) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%s: len %d != len %d: %w", methodHamming, len(a), len(b), ErrLengthMismatch)
	}

	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}

	return d, nil
}

// PDistance is the proportion of differing sites, Hamming(a, b) / len(a).
// It fails with ErrEmptySequence when both sequences are empty.
func PDistance(a, b Sequence) (float64, error) {
	d, err := Hamming(a, b)
	if err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("%s: %w", methodPDistance, ErrEmptySequence)
	}

	return float64(d) / float64(len(a)), nil
}
