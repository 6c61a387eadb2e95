// SPDX-License-Identifier: MIT
// Package: jcsim/jc69
//
// jc69.go — Jukes-Cantor distance correction and its moments.
//
// Contract:
//   • p ≥ Saturation → ErrSaturation; there is no clamping to +Inf.
//   • Pure functions: no state, no randomness, safe for concurrent use.

package jc69

import (
	"fmt"
	"math"
)

// Saturation is the proportion of differing sites at which the JC69
// correction diverges: for four equiprobable bases, two unrelated sequences
// differ at 3/4 of their sites.
const Saturation = 0.75

const (
	methodDistance        = "Distance"
	methodFromProportion  = "FromProportion"
	methodExpectedHamming = "ExpectedHamming"
	methodVariance        = "Variance"
)

const (
	fourThirds    = 4.0 / 3.0
	threeQuarters = 3.0 / 4.0
)

// Distance converts a mean observed Hamming distance over sequences of the
// given length into the JC69 evolutionary distance.
//
//	p = meanHamming / length
//	d = −(3/4) · ln(1 − (4/3)·p)
//
// Distance(0, L) == 0 and d increases strictly with meanHamming.
//
// Errors:
//   - ErrBadLength  — length ≤ 0.
//   - ErrBadInput   — meanHamming negative, NaN or ±Inf.
//   - ErrSaturation — p ≥ 3/4.
//
// Complexity: O(1).
func Distance(meanHamming float64, length int) (float64, error) {
	if length <= 0 {
		return 0, fmt.Errorf("%s: length=%d: %w", methodDistance, length, ErrBadLength)
	}
	if !finiteNonNegative(meanHamming) {
		return 0, fmt.Errorf("%s: mean=%v: %w", methodDistance, meanHamming, ErrBadInput)
	}

	// p may exceed 1 only for a mean above length; saturation catches it.
	d, err := FromProportion(meanHamming / float64(length))
	if err != nil {
		return 0, fmt.Errorf("%s: mean=%g length=%d: %w", methodDistance, meanHamming, length, err)
	}

	return d, nil
}

// FromProportion applies the JC69 transform to a p-distance in [0, 3/4).
func FromProportion(p float64) (float64, error) {
	if !finiteNonNegative(p) {
		return 0, fmt.Errorf("%s: p=%v: %w", methodFromProportion, p, ErrBadInput)
	}
	if p >= Saturation {
		return 0, fmt.Errorf("%s: p=%g: %w", methodFromProportion, p, ErrSaturation)
	}
	if p == 0 {
		return 0, nil // exact zero, not -0
	}

	return -threeQuarters * math.Log(1-fourThirds*p), nil
}

// ExpectedProportion is the inverse transform: the p-distance expected after
// a JC69 distance d, p = 3/4 · (1 − e^{−4d/3}). It returns NaN for negative
// or NaN d.
func ExpectedProportion(d float64) float64 {
	if math.IsNaN(d) || d < 0 {
		return math.NaN()
	}

	return threeQuarters * (1 - math.Exp(-fourThirds*d))
}

// ExpectedHamming returns the exact expected Hamming distance produced by
// numSubs substitution rounds on a nucleic sequence of the given length,
// for the substitution model of the mutation package (uniform site, uniform
// ACGT replacement, repeats and silent draws allowed).
//
// A site escapes every round with probability (1 − 1/L)^numSubs; once hit
// it holds a uniform base and differs from the original with probability
// 3/4. Hence E = L · 3/4 · (1 − (1 − 1/L)^numSubs).
func ExpectedHamming(numSubs, length int) (float64, error) {
	if length <= 0 {
		return 0, fmt.Errorf("%s: length=%d: %w", methodExpectedHamming, length, ErrBadLength)
	}
	if numSubs < 0 {
		return 0, fmt.Errorf("%s: numSubs=%d: %w", methodExpectedHamming, numSubs, ErrBadInput)
	}

	// Probability that one given site is never drawn in numSubs rounds.
	L := float64(length)
	escape := math.Pow(1-1/L, float64(numSubs))

	return L * threeQuarters * (1 - escape), nil
}

// Variance returns the large-sample (delta-method) variance of the JC69
// estimate for an observed proportion p over length sites:
//
//	Var(d) = p(1 − p) / (L · (1 − 4p/3)²)
func Variance(p float64, length int) (float64, error) {
	if length <= 0 {
		return 0, fmt.Errorf("%s: length=%d: %w", methodVariance, length, ErrBadLength)
	}
	if !finiteNonNegative(p) || p > 1 {
		return 0, fmt.Errorf("%s: p=%v: %w", methodVariance, p, ErrBadInput)
	}
	if p >= Saturation {
		return 0, fmt.Errorf("%s: p=%g: %w", methodVariance, p, ErrSaturation)
	}

	den := 1 - fourThirds*p

	return p * (1 - p) / (float64(length) * den * den), nil
}

func finiteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
