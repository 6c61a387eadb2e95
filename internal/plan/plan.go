// SPDX-License-Identifier: MIT
// Package: jcsim/internal/plan
//
// plan.go — YAML sweep plans.

// Package plan reads YAML sweep plans for the jcsweep command.
//
// A plan names the sequence length, trial count and the substitution counts
// to visit, either as an explicit list or as an inclusive range:
//
//	length: 100
//	trials: 1000
//	seed: 42
//	workers: 4
//	range: {from: 0, to: 90, step: 10}
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrBadLength is returned when length is below 1.
	ErrBadLength = errors.New("plan: length must be >= 1")
	// ErrBadTrials is returned when trials is below 1.
	ErrBadTrials = errors.New("plan: trials must be >= 1")
	// ErrBadWorkers is returned for a negative worker count.
	ErrBadWorkers = errors.New("plan: workers must be >= 0")
	// ErrCountSource is returned unless exactly one of counts or range is set.
	ErrCountSource = errors.New("plan: exactly one of counts or range is required")
	// ErrBadRange is returned for a range with step < 1, from > to, or more
	// than MaxPoints points.
	ErrBadRange = errors.New("plan: invalid range")
	// ErrNegativeCount is returned when a substitution count is negative.
	ErrNegativeCount = errors.New("plan: negative substitution count")
)

// MaxPoints bounds how many substitution counts one plan may visit.
const MaxPoints = 1 << 16

// Range is an inclusive arithmetic progression of substitution counts.
type Range struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Step int `yaml:"step"`
}

// Plan describes one sweep.
type Plan struct {
	Length  int    `yaml:"length"`
	Trials  int    `yaml:"trials"`
	Seed    *int64 `yaml:"seed,omitempty"`
	Workers int    `yaml:"workers,omitempty"`
	// List holds explicit counts, visited in order.
	List  []int  `yaml:"counts,omitempty"`
	Range *Range `yaml:"range,omitempty"`
}

// Load reads and validates the plan at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plan: read %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes and validates a YAML plan. Unknown keys are rejected.
func Parse(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("plan: empty document: %w", ErrBadLength)
		}
		return nil, fmt.Errorf("plan: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks the plan's invariants.
func (p *Plan) Validate() error {
	if p.Length < 1 {
		return fmt.Errorf("%w (got %d)", ErrBadLength, p.Length)
	}
	if p.Trials < 1 {
		return fmt.Errorf("%w (got %d)", ErrBadTrials, p.Trials)
	}
	if p.Workers < 0 {
		return fmt.Errorf("%w (got %d)", ErrBadWorkers, p.Workers)
	}
	if (p.List == nil) == (p.Range == nil) {
		return ErrCountSource
	}
	if r := p.Range; r != nil {
		if r.Step < 1 {
			return fmt.Errorf("%w: step %d", ErrBadRange, r.Step)
		}
		if r.From < 0 {
			return fmt.Errorf("%w: from %d", ErrNegativeCount, r.From)
		}
		if r.From > r.To {
			return fmt.Errorf("%w: from %d > to %d", ErrBadRange, r.From, r.To)
		}
		// From >= 0 and To >= From, so To-From cannot overflow.
		if n := (r.To-r.From)/r.Step + 1; n > MaxPoints {
			return fmt.Errorf("%w: %d points exceeds %d", ErrBadRange, n, MaxPoints)
		}
	}
	if len(p.List) > MaxPoints {
		return fmt.Errorf("%w: %d counts exceeds %d", ErrBadRange, len(p.List), MaxPoints)
	}
	for i, c := range p.List {
		if c < 0 {
			return fmt.Errorf("%w: counts[%d]=%d", ErrNegativeCount, i, c)
		}
	}

	return nil
}

// Counts returns the substitution counts to visit, expanding a range
// inclusively. The result is a fresh slice.
func (p *Plan) Counts() []int {
	if p.Range == nil {
		out := make([]int, len(p.List))
		copy(out, p.List)
		return out
	}

	r := p.Range
	if r.Step < 1 || r.From > r.To {
		return []int{}
	}
	// Index by point rather than accumulating c += Step, which wraps
	// when To is near math.MaxInt. i*Step <= To-From, so no term overflows.
	n := (r.To-r.From)/r.Step + 1
	out := make([]int, n)
	for i := range out {
		out[i] = r.From + i*r.Step
	}

	return out
}
