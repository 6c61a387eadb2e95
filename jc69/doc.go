// Package jc69 implements the Jukes–Cantor (1969) distance correction.
//
// 🚀 What is JC69?
//
//	Under the JC69 model every site substitutes at the same rate and every
//	base is equally likely to replace it. Repeated and back substitutions
//	hide some events, so the observed proportion of differing sites p
//	underestimates the true divergence. JC69 corrects it:
//
//	  d = −(3/4) · ln(1 − (4/3)·p)
//
//	The correction is undefined for p ≥ 3/4: the logarithm's argument is no
//	longer positive and the model is saturated. Those inputs fail with
//	ErrSaturation instead of returning NaN or +Inf.
//
// ✨ Also provided:
//   - FromProportion      — the transform on a ready-made p-distance
//   - ExpectedProportion  — the inverse, p = 3/4·(1 − e^{−4d/3})
//   - ExpectedHamming     — the exact expected observed distance of the
//     mutation package's substitution model
//   - Variance            — large-sample variance of the JC69 estimate
//
// ⚙️ Usage:
//
//	d, err := jc69.Distance(meanHamming, 100)
//	if errors.Is(err, jc69.ErrSaturation) {
//	  // too many differences to correct
//	}
package jc69
