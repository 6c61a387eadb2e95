// SPDX-License-Identifier: MIT
// Package: jcsim/jc69
//
// errors.go — sentinel errors for the jc69 package.
//
// Error policy:
//   • Match with errors.Is; call sites wrap with the method name.

package jc69

import "errors"

var (
	// ErrSaturation indicates p ≥ 3/4, where the JC69 logarithm is undefined.
	ErrSaturation = errors.New("jc69: proportion of differing sites is saturated (p >= 0.75)")

	// ErrBadLength indicates a non-positive sequence length.
	ErrBadLength = errors.New("jc69: sequence length must be > 0")

	// ErrBadInput indicates a negative, NaN or infinite distance or proportion,
	// or a negative substitution count.
	ErrBadInput = errors.New("jc69: invalid input")
)
