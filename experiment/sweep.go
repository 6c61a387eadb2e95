// SPDX-License-Identifier: MIT
// Package: jcsim/experiment
//
// sweep.go — the parallel substitution-count sweep.
//
// Contract:
//   • All inputs are validated before any trial runs.
//   • Per-count seeds are drawn in input order before scheduling, so the
//     Result does not depend on the worker count.
//   • Any failure aborts the sweep; no partial Result is returned.

package experiment

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jcsim/jc69"
	"github.com/katalvlaran/jcsim/mutation"
	"github.com/katalvlaran/jcsim/stats"
)

const methodSweep = "Sweep"

// Result holds the aligned series of one sweep. Index i of every slice
// refers to SubstitutionCounts[i].
type Result struct {
	// SubstitutionCounts is a copy of the counts the sweep was run with.
	SubstitutionCounts []int
	// HammingMeans is the mean observed Hamming distance per count.
	HammingMeans []float64
	// JC69Distances is jc69.Distance(HammingMeans[i], length).
	JC69Distances []float64
	// HammingStds is the sample std per count; nil unless WithSpread is set.
	HammingStds []float64
}

// Len returns the number of points in the sweep.
func (r Result) Len() int {
	return len(r.HammingMeans)
}

// Sweep runs RunTrials(length, s, trialCount) for every s in counts,
// averages each sample with stats.Mean, then maps every mean through
// jc69.Distance(mean, length).
//
// Every input is validated before any trial runs. A failure for one count
// (including jc69.ErrSaturation) aborts the whole sweep and no partial
// Result is returned.
//
// Complexity: O(len(counts) · trialCount · (length + s)) time,
// O(workers · (trialCount + length)) extra memory.
func Sweep(length, trialCount int, counts []int, opts ...Option) (Result, error) {
	cfg := newSweepConfig(opts...)

	if length < 1 {
		return Result{}, fmt.Errorf("%s: length=%d: %w", methodSweep, length, ErrBadLength)
	}
	minTrials := 1
	if cfg.spread {
		minTrials = 2
	}
	if trialCount < minTrials {
		return Result{}, fmt.Errorf("%s: trials=%d < %d: %w", methodSweep, trialCount, minTrials, ErrBadTrialCount)
	}
	for i, s := range counts {
		if s < 0 {
			return Result{}, fmt.Errorf("%s: counts[%d]=%d: %w", methodSweep, i, s, mutation.ErrNegativeSubstitutions)
		}
	}

	master := cfg.rng
	if master == nil {
		master = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	// One stream per count, drawn in input order before scheduling.
	seeds := make([]int64, len(counts))
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	// Each goroutine writes only its own index, so no locking is needed.
	means := make([]float64, len(counts))
	var stds []float64
	if cfg.spread {
		stds = make([]float64, len(counts))
	}

	cfg.logger.Debug("sweep started",
		"length", length, "trials", trialCount, "points", len(counts), "workers", cfg.workers)

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i, s := range counts {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seeds[i]))
			sample, err := RunTrials(rng, length, s, trialCount)
			if err != nil {
				return fmt.Errorf("%s: subs=%d: %w", methodSweep, s, err)
			}
			m, err := stats.Mean(sample)
			if err != nil {
				return fmt.Errorf("%s: subs=%d: %w", methodSweep, s, err)
			}
			means[i] = m
			if stds != nil {
				sd, err := stats.Std(sample)
				if err != nil {
					return fmt.Errorf("%s: subs=%d: %w", methodSweep, s, err)
				}
				stds[i] = sd
			}
			cfg.logger.Debug("substitution count done", "subs", s, "hamming_mean", m)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Second pass: the JC69 mapping runs serially after every mean is known.
	jc := make([]float64, len(means))
	for i, m := range means {
		d, err := jc69.Distance(m, length)
		if err != nil {
			return Result{}, fmt.Errorf("%s: subs=%d: %w", methodSweep, counts[i], err)
		}
		jc[i] = d
	}

	cfg.logger.Debug("sweep finished", "points", len(counts))

	return Result{
		SubstitutionCounts: append([]int(nil), counts...),
		HammingMeans:       means,
		JC69Distances:      jc,
		HammingStds:        stds,
	}, nil
}
