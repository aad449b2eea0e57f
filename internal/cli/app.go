// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lcgpredict/internal/logx"
	"github.com/katalvlaran/lcgpredict/interop"
	"github.com/katalvlaran/lcgpredict/presets"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitMismatch = 1 // verification mismatch or runtime failure
	ExitUsage    = 2
)

// ErrMismatch is returned when -verify finds a disagreement.
var ErrMismatch = errors.New("cli: verification failed")

// RunContext executes lcgpredict with argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := NewFlagSet("lcgpredict")
	fs.SetOutput(io.Discard)

	opts, err := ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return ExitUsage
	}

	level := logx.INFO
	if opts.Verbose {
		level = logx.DEBUG
	}
	log := logx.New(stderr, level, opts.Color)

	err = run(parent, opts, outw, stderr, log)
	if ferr := outw.Flush(); err == nil && ferr != nil {
		err = ferr
	}
	if err != nil {
		log.Section("lcgpredict").Errorf("%v", err)
		return exitCode(err)
	}
	return ExitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// exitCode maps input problems to ExitUsage and everything else to ExitMismatch.
func exitCode(err error) int {
	for _, usage := range []error{
		presets.ErrUnknownPreset,
		presets.ErrWidthOverflow,
		presets.ErrInvalidPreset,
		presets.ErrUnsupportedFormat,
		interop.ErrEmptyState,
		interop.ErrMalformedState,
		interop.ErrStateOverflow,
		os.ErrNotExist,
	} {
		if errors.Is(err, usage) {
			return ExitUsage
		}
	}
	return ExitMismatch
}

func run(ctx context.Context, opts Options, out io.Writer, stderr io.Writer, log *logx.Logger) error {
	cat := presets.Builtin()
	if opts.Catalog != "" {
		extra, err := presets.LoadFile(opts.Catalog)
		if err != nil {
			return err
		}
		log.Section("catalog").Debugf("loaded %d presets from %s", len(extra.Presets), opts.Catalog)
		cat = cat.Merge(extra)
	}

	if opts.List {
		return list(out, cat)
	}

	p, err := resolvePreset(cat, opts)
	if err != nil {
		return err
	}
	state, err := readState(opts.State)
	if err != nil {
		return err
	}

	w := opts.Width
	if w == 0 {
		w = p.Width
	}
	log.Section("lcgpredict").Debugf("%s as uint%d", p, w)

	j := job{opts: opts, preset: p, state: state, out: out, stderr: stderr, log: log}
	switch w {
	case 8:
		return execute[uint8](ctx, j)
	case 16:
		return execute[uint16](ctx, j)
	case 32:
		return execute[uint32](ctx, j)
	default:
		return execute[uint64](ctx, j)
	}
}

// resolvePreset starts from -preset (or an empty custom record) and applies
// the explicit -a, -c, -m and -seed flags.
func resolvePreset(cat presets.Catalog, opts Options) (presets.Preset, error) {
	p := presets.Preset{Name: "custom", Width: 64}
	if opts.Width != 0 {
		p.Width = opts.Width
	}
	if opts.Preset != "" {
		var err error
		if p, err = cat.Find(opts.Preset); err != nil {
			return p, err
		}
	}

	custom := opts.SetA || opts.SetC || opts.SetM
	if custom && opts.Width > p.Width {
		// overrides are checked against the requested word width; a 2^W
		// modulus keeps meaning 2^(preset width)
		if p.M == 0 {
			p.M = presets.Number(1) << p.Width
		}
		p.Width = opts.Width
	}
	if opts.SetA {
		p.A = opts.A
	}
	if opts.SetC {
		p.C = opts.C
	}
	if opts.SetM {
		p.M = opts.M
	}
	if custom {
		// reference outputs describe the unmodified generator
		p.Reference, p.Checkpoints = nil, nil
	}
	if opts.SetSeed {
		seed := opts.Seed
		p.Seed = &seed
		p.Reference, p.Checkpoints = nil, nil
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// readState returns the -state text, reading it from a file for @FILE.
func readState(arg string) (string, error) {
	name, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return arg, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	s, err := interop.ReadState[uint64](f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return interop.FormatState(s), nil
}

func list(out io.Writer, cat presets.Catalog) error {
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWIDTH\tA\tC\tM\tDESCRIPTION")
	for _, p := range cat.Presets {
		m := p.M.String()
		if p.M == 0 {
			m = fmt.Sprintf("2^%d", p.Width)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n", p.Name, p.Width, p.A, p.C, m, p.Description)
	}
	return tw.Flush()
}
