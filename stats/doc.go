// Package stats provides sample statistics for trial outcomes.
//
// Mean, Variance and Std operate on any integer or float slice. Variance
// uses Welford's single-pass update,
//
//	M_i = M_{i-1} + (x_i - M_{i-1}) / i
//	S_i = S_{i-1} + (x_i - M_i)(x_i - M_{i-1})
//	s²  = S_N / (N - 1)
//
// which avoids the catastrophic cancellation of the naive Σx² − (Σx)²/N
// form. The Bessel-corrected (sample) variance needs N ≥ 2.
//
// The same recurrence is exposed as the streaming Welford accumulator for
// callers that do not want to retain the sample.
//
// Errors:
//   - ErrEmptySample        — N == 0.
//   - ErrInsufficientSample — N == 1 where a variance is required.
package stats
