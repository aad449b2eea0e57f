// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/katalvlaran/lcgpredict/internal/logx"
	"github.com/katalvlaran/lcgpredict/presets"
)

// Options holds all CLI flags.
type Options struct {
	// Generator
	Preset  string
	Catalog string
	A, C, M presets.Number
	Width   uint // 0 = preset width, or 64 for custom parameters

	// Starting point
	Seed  presets.Number
	State string // reference text state, or @FILE to read it from a file

	// Query
	N     uint64
	Count int

	// Modes
	List   bool
	Verify bool
	Dump   bool

	// Logging
	Color   logx.ColorMode
	Verbose bool

	// Which of -a, -c, -m, -seed were given explicitly.
	SetA, SetC, SetM, SetSeed bool
}

// ParseArgs registers and parses all flags, then validates combinations.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var (
		opt   Options
		help  bool
		color string
	)

	fs.StringVar(&opt.Preset, "preset", "", "named generator (see -list)")
	fs.StringVar(&opt.Catalog, "catalog", "", "extra preset catalog (.yaml, .yml or .toml)")
	fs.TextVar(&opt.A, "a", presets.Number(0), "multiplier (overrides the preset)")
	fs.TextVar(&opt.C, "c", presets.Number(0), "increment (overrides the preset)")
	fs.TextVar(&opt.M, "m", presets.Number(0), "modulus, 0 = 2^width (overrides the preset)")
	fs.UintVar(&opt.Width, "width", 0, "word width in bits: 8, 16, 32 or 64 (0 = preset width, 64 for custom); -a, -c, -m are checked against it")

	fs.TextVar(&opt.Seed, "seed", presets.Number(1), "initial state")
	fs.StringVar(&opt.State, "state", "", "reference generator state text, or @FILE")

	fs.Uint64Var(&opt.N, "n", 0, "number of steps to skip")
	fs.IntVar(&opt.Count, "count", 0, "print the K states following step n instead of step n itself")

	fs.BoolVar(&opt.List, "list", false, "list presets and exit")
	fs.BoolVar(&opt.Verify, "verify", false, "check prediction against simulation and reference tables")
	fs.BoolVar(&opt.Dump, "dump", false, "dump the engine to stderr")

	fs.StringVar(&color, "color", "auto", "log colours: auto | on | off")
	fs.BoolVar(&opt.Verbose, "v", false, "verbose logging")
	fs.BoolVar(&help, "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			opt.SetA = true
		case "c":
			opt.SetC = true
		case "m":
			opt.SetM = true
		case "seed":
			opt.SetSeed = true
		}
	})

	var err error
	if opt.Color, err = logx.ParseColor(color); err != nil {
		return opt, err
	}

	// Validation
	if opt.List {
		return opt, nil
	}
	switch {
	case opt.Preset == "" && !opt.SetA:
		return opt, errors.New("provide -preset or -a")
	case opt.SetSeed && opt.State != "":
		return opt, errors.New("-seed conflicts with -state")
	case opt.Count < 0:
		return opt, errors.New("-count must be ≥ 0")
	}
	switch opt.Width {
	case 0, 8, 16, 32, 64:
	default:
		return opt, fmt.Errorf("invalid -width %d", opt.Width)
	}
	return opt, nil
}
