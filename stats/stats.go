// SPDX-License-Identifier: MIT
// Package: jcsim/stats
//
// stats.go — sample mean, Welford variance and standard deviation.
//
// Contract:
//   • Inputs are never modified.
//   • Empty input → ErrEmptySample; a single observation → ErrInsufficientSample
//     for Variance/Std (denominator N-1).
//   • Deterministic: fixed left-to-right accumulation order.

package stats

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySample indicates a statistic was requested over zero observations.
	ErrEmptySample = errors.New("stats: empty sample")

	// ErrInsufficientSample indicates a sample variance was requested over a
	// single observation.
	ErrInsufficientSample = errors.New("stats: sample variance needs at least two observations")
)

const (
	opMean            = "Mean"
	opVariance        = "Variance"
	opStd             = "Std"
	opTwoPassVariance = "TwoPassVariance"
)

// Number is the set of element types accepted by the sample functions.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Mean returns the arithmetic mean of sample.
// Complexity: O(N) time, O(1) space.
func Mean[T Number](sample []T) (float64, error) {
	if len(sample) == 0 {
		return 0, fmt.Errorf("%s: %w", opMean, ErrEmptySample)
	}

	sum := 0.0
	for _, x := range sample {
		sum += float64(x)
	}

	return sum / float64(len(sample)), nil
}

// Variance returns the Bessel-corrected sample variance of sample computed
// with Welford's online recurrence.
// Complexity: O(N) time, O(1) space.
func Variance[T Number](sample []T) (float64, error) {
	var w Welford
	for _, x := range sample {
		w.Push(float64(x))
	}

	v, err := w.Variance()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opVariance, err)
	}

	return v, nil
}

// Std returns the sample standard deviation, math.Sqrt(Variance(sample)).
// Complexity: O(N) time, O(1) space.
func Std[T Number](sample []T) (float64, error) {
	v, err := Variance(sample)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opStd, err)
	}

	return math.Sqrt(v), nil
}

// TwoPassVariance is the textbook estimator Σ(x−x̄)²/(N−1): one pass for the
// mean, a second for the squared deviations. It is kept as a reference
// against which the Welford result can be checked.
// Complexity: O(N) time (two passes), O(1) space.
func TwoPassVariance[T Number](sample []T) (float64, error) {
	n := len(sample)
	if n == 0 {
		return 0, fmt.Errorf("%s: %w", opTwoPassVariance, ErrEmptySample)
	}
	if n == 1 {
		return 0, fmt.Errorf("%s: %w", opTwoPassVariance, ErrInsufficientSample)
	}

	m, _ := Mean(sample)
	ss := 0.0
	for _, x := range sample {
		d := float64(x) - m
		ss += d * d
	}

	return ss / float64(n-1), nil
}
