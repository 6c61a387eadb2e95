// SPDX-License-Identifier: MIT
// Package: jcsim/cmd/jcsweep
//
// main.go — kong command tree, flag/plan merge and result writers.

// Command jcsweep runs the JC69 versus Hamming mutation study from the
// command line and prints one row per substitution count.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jcsim/alphabet"
	"github.com/katalvlaran/jcsim/experiment"
	"github.com/katalvlaran/jcsim/internal/logging"
	"github.com/katalvlaran/jcsim/internal/plan"
)

const version = "0.1.0"

// Defaults for a sweep when neither flags nor a plan file set a value.
const (
	defaultLength = 100
	defaultTrials = 1000
	defaultFrom   = 0
	defaultTo     = 90
	defaultStep   = 10
)

var (
	// errConflictingCounts is returned when --counts is combined with range flags.
	errConflictingCounts = errors.New("--counts and --from/--to/--step are mutually exclusive")

	// errRangeNeedsStep is returned when --from or --to is given without --step.
	errRangeNeedsStep = errors.New("--from/--to require --step")
)

// Globals are flags shared by every subcommand.
type Globals struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`
}

// CLI defines the command-line interface for jcsweep.
type CLI struct {
	Globals

	Sweep    SweepCmd    `cmd:"" default:"withargs" help:"Run a substitution-count sweep"`
	Alphabet AlphabetCmd `cmd:"" help:"Print the symbols of an alphabet category"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// SweepCmd runs experiment.Sweep. Zero-valued numeric flags are treated as
// unset and fall back to the plan file, then to the built-in defaults.
type SweepCmd struct {
	Plan    string `name:"plan" type:"existingfile" help:"YAML plan file"`
	Length  int    `name:"length" help:"Sequence length (default 100)"`
	Trials  int    `name:"trials" help:"Trials per substitution count (default 1000)"`
	Counts  []int  `name:"counts" sep:"," help:"Comma-separated substitution counts"`
	From    int    `name:"from" help:"First substitution count of a range"`
	To      int    `name:"to" help:"Last substitution count of a range (inclusive)"`
	Step    int    `name:"step" help:"Range step; selects range mode when > 0"`
	Seed    string `name:"seed" help:"Master RNG seed (integer); drawn from the clock when empty"`
	Workers int    `name:"workers" help:"Parallel workers (default GOMAXPROCS)"`
	Spread  bool   `name:"spread" help:"Also report the per-count Hamming standard deviation"`
	Format  string `name:"format" default:"tsv" enum:"tsv,json,yaml" help:"Output format (tsv, json, yaml)"`
}

// resolved is a SweepCmd after flags, plan and defaults are merged.
type resolved struct {
	Length  int
	Trials  int
	Seed    int64
	Workers int
	Counts  []int
}

// resolve merges flags over the plan file over defaults and validates the
// outcome with the same rules as a plan file.
func (c *SweepCmd) resolve(now func() time.Time) (resolved, error) {
	var base plan.Plan
	if c.Plan != "" {
		p, err := plan.Load(c.Plan)
		if err != nil {
			return resolved{}, err
		}
		base = *p
	}

	switch {
	case c.Length < 0:
		return resolved{}, fmt.Errorf("--length %d: %w", c.Length, plan.ErrBadLength)
	case c.Trials < 0:
		return resolved{}, fmt.Errorf("--trials %d: %w", c.Trials, plan.ErrBadTrials)
	case c.Workers < 0:
		return resolved{}, fmt.Errorf("--workers %d: %w", c.Workers, plan.ErrBadWorkers)
	case c.Step < 0:
		return resolved{}, fmt.Errorf("--step %d: %w", c.Step, plan.ErrBadRange)
	case len(c.Counts) > 0 && c.rangeFlagged():
		return resolved{}, errConflictingCounts
	case c.Step == 0 && c.rangeFlagged():
		return resolved{}, errRangeNeedsStep
	}

	merged := plan.Plan{
		Length:  firstPositive(c.Length, base.Length, defaultLength),
		Trials:  firstPositive(c.Trials, base.Trials, defaultTrials),
		Workers: firstPositive(c.Workers, base.Workers, runtime.GOMAXPROCS(0)),
	}
	switch {
	case len(c.Counts) > 0:
		merged.List = c.Counts
	case c.Step > 0:
		merged.Range = &plan.Range{From: c.From, To: c.To, Step: c.Step}
	case base.List != nil || base.Range != nil:
		merged.List, merged.Range = base.List, base.Range
	default:
		merged.Range = &plan.Range{From: defaultFrom, To: defaultTo, Step: defaultStep}
	}
	if err := merged.Validate(); err != nil {
		return resolved{}, err
	}

	seed := now().UnixNano()
	switch {
	case c.Seed != "":
		s, err := strconv.ParseInt(c.Seed, 10, 64)
		if err != nil {
			return resolved{}, fmt.Errorf("invalid --seed %q: %w", c.Seed, err)
		}
		seed = s
	case base.Seed != nil:
		seed = *base.Seed
	}

	return resolved{
		Length:  merged.Length,
		Trials:  merged.Trials,
		Seed:    seed,
		Workers: merged.Workers,
		Counts:  merged.Counts(),
	}, nil
}

// rangeFlagged reports whether any of --from, --to or --step was set.
func (c *SweepCmd) rangeFlagged() bool {
	return c.From != 0 || c.To != 0 || c.Step != 0
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}

	return 0
}

// Run executes the sweep and writes the result to stdout.
func (c *SweepCmd) Run(g *Globals, kctx *kong.Context) error {
	logger, err := newLogger(g, kctx.Stderr)
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString())

	r, err := c.resolve(time.Now)
	if err != nil {
		return err
	}

	logger.Info("sweep requested",
		"length", r.Length, "trials", r.Trials, "seed", r.Seed,
		"workers", r.Workers, "points", len(r.Counts))
	start := time.Now()

	opts := []experiment.Option{
		experiment.WithSeed(r.Seed),
		experiment.WithWorkers(r.Workers),
		experiment.WithLogger(logger),
	}
	if c.Spread {
		opts = append(opts, experiment.WithSpread())
	}
	res, err := experiment.Sweep(r.Length, r.Trials, r.Counts, opts...)
	if err != nil {
		logger.Error("sweep failed", "error", err)
		return err
	}
	logger.Info("sweep done", "elapsed", time.Since(start).String())

	return writeResult(kctx.Stdout, c.Format, newReport(r, res))
}

// AlphabetCmd prints one alphabet, or every category when none is named.
type AlphabetCmd struct {
	Category string `arg:"" optional:"" help:"Category tag (nucleic, proteic, iupac_nucleic, iupac_proteic)"`
}

// Run prints the requested alphabet.
func (c *AlphabetCmd) Run(kctx *kong.Context) error {
	if c.Category == "" {
		for _, cat := range alphabet.Categories() {
			a := alphabet.MustLookup(cat)
			fmt.Fprintf(kctx.Stdout, "%-14s %2d %s\n", cat, a.Len(), a)
		}
		return nil
	}

	a, err := alphabet.LookupTag(c.Category)
	if err != nil {
		return err
	}
	fmt.Fprintln(kctx.Stdout, a)

	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run prints the version.
func (c *VersionCmd) Run(kctx *kong.Context) error {
	fmt.Fprintf(kctx.Stdout, "jcsweep %s (%s)\n", version, runtime.Version())

	return nil
}

func newLogger(g *Globals, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return nil, err
	}

	return logging.New(w, level, format), nil
}

// point is one output row.
type point struct {
	Subs        int      `json:"subs" yaml:"subs"`
	HammingMean float64  `json:"hamming_mean" yaml:"hamming_mean"`
	JC69        float64  `json:"jc69" yaml:"jc69"`
	HammingStd  *float64 `json:"hamming_std,omitempty" yaml:"hamming_std,omitempty"`
}

// report is the structured (json, yaml) form of a sweep.
type report struct {
	Length int     `json:"length" yaml:"length"`
	Trials int     `json:"trials" yaml:"trials"`
	Seed   int64   `json:"seed" yaml:"seed"`
	Points []point `json:"points" yaml:"points"`
}

func newReport(r resolved, res experiment.Result) report {
	rep := report{
		Length: r.Length,
		Trials: r.Trials,
		Seed:   r.Seed,
		Points: make([]point, res.Len()),
	}
	for i := range rep.Points {
		rep.Points[i] = point{
			Subs:        res.SubstitutionCounts[i],
			HammingMean: res.HammingMeans[i],
			JC69:        res.JC69Distances[i],
		}
		if res.HammingStds != nil {
			sd := res.HammingStds[i]
			rep.Points[i].HammingStd = &sd
		}
	}

	return rep
}

func writeResult(w io.Writer, format string, rep report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case "tsv", "":
		return writeTSV(w, rep)
	}

	return fmt.Errorf("unknown output format %q", format)
}

func writeTSV(w io.Writer, rep report) error {
	spread := len(rep.Points) > 0 && rep.Points[0].HammingStd != nil

	header := "subs\thamming_mean\tjc69"
	if spread {
		header += "\thamming_std"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, p := range rep.Points {
		line := fmt.Sprintf("%d\t%.4f\t%.6f", p.Subs, p.HammingMean, p.JC69)
		if spread {
			line += fmt.Sprintf("\t%.4f", *p.HammingStd)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// execute parses args and runs the selected command.
func execute(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("jcsweep"),
		kong.Description("Compare Hamming and JC69-corrected distances on simulated DNA."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kctx.Run(&cli.Globals)
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "jcsweep:", err)
		os.Exit(1)
	}
}
