// Package jcsim simulates point substitutions on random DNA and compares the
// raw Hamming distance with the Jukes-Cantor (JC69) corrected distance.
//
// 🧬 What does it measure?
//
//	Hamming counts differing sites, so it undercounts once sites are hit
//	twice or mutate back. JC69 corrects for that under equal base
//	frequencies and equal substitution rates:
//
//		d = -(3/4) · ln(1 - 4p/3),   p = hamming / length
//
// Everything is organized under small subpackages, bottom-up:
//
//	alphabet/   — symbol sets (nucleic, proteic, IUPAC variants)
//	sequence/   — random sequence generation, Hamming & p-distance
//	mutation/   — in-place substitution with silent/repeat accounting
//	stats/      — Mean, Variance (Welford), Std, streaming Welford
//	jc69/       — JC69 distance, saturation, expectation & variance
//	experiment/ — RunTrials and the parallel, reproducible Sweep
//	cmd/jcsweep — command-line front-end (TSV, JSON, YAML output)
//
// Quick sweep:
//
//	res, err := experiment.Sweep(100, 1000, []int{0, 10, 20},
//		experiment.WithSeed(42), experiment.WithWorkers(4))
//
//	go install github.com/katalvlaran/jcsim/cmd/jcsweep@latest
package jcsim
