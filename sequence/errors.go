// SPDX-License-Identifier: MIT
// Package: jcsim/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy:
//   • Only package-level sentinels are exposed; match them with errors.Is.
//   • Call sites attach context with %w ("Hamming: len 3 != len 4: <sentinel>").
//   • Nothing in this package panics on caller input.

package sequence

import "errors"

var (
	// ErrNegativeLength indicates a requested sequence length below zero.
	ErrNegativeLength = errors.New("sequence: negative length")

	// ErrEmptyAlphabet indicates Generate was given an alphabet with no symbols.
	ErrEmptyAlphabet = errors.New("sequence: empty alphabet")

	// ErrNeedRandSource indicates a nil *rand.Rand was passed to a stochastic
	// call. mutation and experiment wrap this same sentinel.
	ErrNeedRandSource = errors.New("sequence: rng is required")

	// ErrLengthMismatch indicates two sequences of different lengths were compared.
	ErrLengthMismatch = errors.New("sequence: lengths differ")

	// ErrEmptySequence indicates an operation that needs at least one site
	// (e.g. PDistance) received zero-length sequences.
	ErrEmptySequence = errors.New("sequence: empty sequence")
)
