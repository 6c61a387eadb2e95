// SPDX-License-Identifier: MIT
// Package: jcsim/experiment
//
// errors.go — sentinel errors for the experiment package.
//
// Error policy:
//   • Sentinels from lower packages (sequence, mutation, stats, jc69) are
//     propagated wrapped, never replaced; errors.Is sees through every layer.
//   • A nil rng is sequence.ErrNeedRandSource at every layer.
//   • Errors carry the failing substitution count: "Sweep: subs=90: ...".
//
// Priority when several inputs are invalid:
//   ErrBadLength → ErrBadTrialCount → negative counts (mutation.ErrNegativeSubstitutions).

package experiment

import "errors"

var (
	// ErrBadLength indicates a sequence length below 1.
	ErrBadLength = errors.New("experiment: sequence length must be >= 1")

	// ErrBadTrialCount indicates fewer trials than the requested statistics need.
	ErrBadTrialCount = errors.New("experiment: invalid trial count")
)
