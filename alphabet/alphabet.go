// SPDX-License-Identifier: MIT
// Package: jcsim/alphabet
//
// alphabet.go — the symbol-set registry and the Alphabet type.
//
// Contract:
//   • The registry is fixed at compile time; Lookup hands out copies.
//   • Unknown tags or categories → ErrInvalidCategory, never an empty set.
//   • Only MustLookup panics.

package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCategory indicates that a category tag is not registered.
// Callers must treat it as fatal to the operation that requested the alphabet.
var ErrInvalidCategory = errors.New("alphabet: invalid category")

// Category identifies a registered symbol set.
type Category int

const (
	// Nucleic is the DNA alphabet ACGT.
	Nucleic Category = iota
	// Proteic is the 20 standard amino acids (one-letter codes).
	Proteic
	// IUPACNucleic is the 16 IUPAC nucleotide codes, ambiguity codes included.
	IUPACNucleic
	// IUPACProteic is the 20 amino acids plus the X ambiguity code.
	IUPACProteic
)

// registry order is the Category order; do not reorder.
var registry = [...]struct {
	tag     string
	symbols string
}{
	Nucleic:      {"nucleic", "ACGT"},
	Proteic:      {"proteic", "ACDEFGHIKLMNPQRSTVWY"},
	IUPACNucleic: {"iupac_nucleic", "ACGTUWSMKRYBDHVN"},
	IUPACProteic: {"iupac_proteic", "ARNDCQEGHILKMFPSTWYVX"},
}

// String returns the canonical tag ("nucleic", "proteic", ...).
func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}

	return registry[c].tag
}

func (c Category) valid() bool {
	return c >= 0 && int(c) < len(registry)
}

// Categories returns every registered category in registry order.
func Categories() []Category {
	out := make([]Category, len(registry))
	for i := range registry {
		out[i] = Category(i)
	}

	return out
}

// ParseCategory maps a tag such as "iupac_nucleic" to its Category.
// Matching is case-insensitive and ignores surrounding whitespace.
// Complexity: O(len(registry)).
func ParseCategory(tag string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(tag))
	for i, e := range registry {
		if e.tag == norm {
			return Category(i), nil
		}
	}

	return 0, fmt.Errorf("ParseCategory(%q): %w", tag, ErrInvalidCategory)
}

// Alphabet is an ordered, deduplicated set of single-byte symbols.
type Alphabet []byte

// Lookup returns the symbol set registered for c.
//
// The returned Alphabet is a copy; mutating it does not affect the registry.
// An unknown category yields (nil, ErrInvalidCategory) so that an absent
// alphabet can never be mistaken for an empty one.
//
// Complexity: O(k) time and memory for the copy, k = symbol count.
func Lookup(c Category) (Alphabet, error) {
	if !c.valid() {
		return nil, fmt.Errorf("Lookup(%d): %w", int(c), ErrInvalidCategory)
	}

	// string → []byte conversion allocates, so callers own the result.
	return Alphabet(registry[c].symbols), nil
}

// LookupTag is Lookup keyed by the textual tag.
func LookupTag(tag string) (Alphabet, error) {
	c, err := ParseCategory(tag)
	if err != nil {
		return nil, err
	}

	return Lookup(c)
}

// MustLookup is Lookup for package-level fixtures. It panics on an unknown
// category, which is always a programmer error at that call site.
func MustLookup(c Category) Alphabet {
	a, err := Lookup(c)
	if err != nil {
		panic(err)
	}

	return a
}

// Len returns the number of symbols.
func (a Alphabet) Len() int {
	return len(a)
}

// At returns the symbol at index i. It panics if i is out of range, like a
// slice index.
func (a Alphabet) At(i int) byte {
	return a[i]
}

// Contains reports whether sym belongs to the alphabet.
// Complexity: O(k); alphabets are at most a few dozen symbols.
func (a Alphabet) Contains(sym byte) bool {
	for _, s := range a {
		if s == sym {
			return true
		}
	}

	return false
}

// String renders the symbols in order, e.g. "ACGT".
func (a Alphabet) String() string {
	return string(a)
}
