// Package experiment runs repeated mutate-and-measure trials and sweeps them
// across substitution counts, producing the two series compared by the
// study: mean observed Hamming distance and its JC69 correction.
//
// 🚀 Pipeline per substitution count s:
//
//	for each of trialCount trials:
//	  seq   ← sequence.Generate(rng, length, nucleic)
//	  d_i   ← mutation.Mutate(rng, seq, s)
//	mean_s ← stats.Mean(d_1..d_n)
//	jc_s   ← jc69.Distance(mean_s, length)
//
// ✨ Guarantees:
//   - output order matches the order of the substitution counts
//   - fail-fast: the first failing count aborts the sweep; no partial Result
//   - reproducible: a fixed master seed yields the same Result for any
//     worker count (see below)
//
// Reproducibility contract:
//
//	The master *rand.Rand (WithSeed / WithRand) draws one stream seed per
//	substitution count, in input order, before any work is scheduled. Each
//	count then runs all its trials serially on its own stream. Counts can
//	therefore run in parallel (WithWorkers) without sharing RNG state and
//	without changing results.
//
// ⚙️ Usage:
//
//	res, err := experiment.Sweep(100, 1000, []int{0, 10, 20, 30},
//	  experiment.WithSeed(42),
//	  experiment.WithWorkers(4),
//	)
//	// res.HammingMeans[i], res.JC69Distances[i] ↔ res.SubstitutionCounts[i]
package experiment
