// Package sequence generates random symbol sequences and measures the
// Hamming distance between them.
//
// 🚀 What is in here?
//
//	Generate draws each position independently and uniformly from an
//	alphabet (sampling with replacement, not a permutation). Hamming
//	counts positional mismatches between two sequences of equal length.
//
// ✨ Key guarantees:
//   - randomness comes only from the *rand.Rand handed in by the caller;
//     there is no package-level RNG
//   - a zero length yields an empty sequence, not an error
//   - Hamming on unequal lengths fails with ErrLengthMismatch and never
//     compares a partial prefix
//
// ⚙️ Usage:
//
//	rng := rand.New(rand.NewSource(42))
//	s1, _ := sequence.Generate(rng, 100, alphabet.MustLookup(alphabet.Nucleic))
//	s2 := s1.Clone()
//	d, err := sequence.Hamming(s1, s2) // d == 0
//
// Complexity:
//
//   - Generate: O(n) time, O(n) memory
//   - Hamming:  O(n) time, O(1) memory
package sequence
