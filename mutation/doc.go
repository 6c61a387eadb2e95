// Package mutation applies random point substitutions to a sequence and
// reports how far the mutant drifted from the original.
//
// Model:
//
//	Starting from a copy of the input, each of numSubs rounds
//	  1. picks a site uniformly in [0, len),
//	  2. picks a replacement uniformly from the nucleic alphabet ACGT,
//	  3. overwrites the site.
//	Sites may be hit more than once and a replacement may equal the symbol
//	already there (a silent substitution). Both effects make the observed
//	Hamming distance smaller than numSubs, which is exactly the gap the
//	JC69 correction models.
//
// The replacement alphabet is always nucleic, whatever alphabet the input
// was drawn from.
package mutation
