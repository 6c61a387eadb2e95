// Package alphabet is the registry of fixed symbol sets used to draw random
// biological sequences.
//
// 🚀 What is an Alphabet?
//
//	An Alphabet is an ordered, deduplicated set of single-byte symbols.
//	Four categories are registered:
//	  • nucleic        — ACGT (DNA bases)
//	  • proteic        — the 20 standard amino acids
//	  • iupac_nucleic  — the 16 IUPAC nucleotide ambiguity codes
//	  • iupac_proteic  — 20 amino acids plus the X ambiguity code
//
// ✨ Key properties:
//   - immutable registry: Lookup returns a fresh copy on every call
//   - unknown categories are errors (ErrInvalidCategory), never an empty set
//   - stable symbol order, so seeded draws are reproducible
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/jcsim/alphabet"
//
//	a, err := alphabet.Lookup(alphabet.Nucleic)
//	if err != nil {
//	  // errors.Is(err, alphabet.ErrInvalidCategory)
//	}
//	fmt.Println(a.Len(), a) // 4 ACGT
package alphabet
