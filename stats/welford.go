// SPDX-License-Identifier: MIT
// Package: jcsim/stats
//
// welford.go — streaming mean/variance accumulator.
//
// Contract:
//   • Zero value is ready to use; not safe for concurrent use.
//   • Variance uses the N-1 denominator, like Variance in stats.go.

package stats

import (
	"fmt"
	"math"
)

// Welford accumulates mean and sum of squared deviations in one pass.
// The zero value is an empty accumulator ready for use. A Welford is not
// safe for concurrent use.
type Welford struct {
	n int
	m float64 // running mean
	s float64 // running sum of squared deviations
}

// Push adds one observation in O(1).
func (w *Welford) Push(x float64) {
	w.n++
	old := w.m
	// m_k = m_{k-1} + (x - m_{k-1}) / k
	w.m += (x - old) / float64(w.n)
	// S_k = S_{k-1} + (x - m_k)(x - m_{k-1})
	w.s += (x - w.m) * (x - old)
}

// N returns the number of observations pushed so far.
func (w *Welford) N() int {
	return w.n
}

// Mean returns the running mean, or ErrEmptySample before the first Push.
func (w *Welford) Mean() (float64, error) {
	if w.n == 0 {
		return 0, fmt.Errorf("Welford.Mean: %w", ErrEmptySample)
	}

	return w.m, nil
}

// Variance returns S/(N−1).
func (w *Welford) Variance() (float64, error) {
	switch w.n {
	case 0:
		return 0, fmt.Errorf("Welford.Variance: %w", ErrEmptySample)
	case 1:
		return 0, fmt.Errorf("Welford.Variance: %w", ErrInsufficientSample)
	}

	return w.s / float64(w.n-1), nil
}

// Std returns the square root of Variance.
func (w *Welford) Std() (float64, error) {
	v, err := w.Variance()
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// Reset empties the accumulator.
func (w *Welford) Reset() {
	*w = Welford{}
}
