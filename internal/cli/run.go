// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/katalvlaran/lcgpredict/engine"
	"github.com/katalvlaran/lcgpredict/internal/logx"
	"github.com/katalvlaran/lcgpredict/interop"
	"github.com/katalvlaran/lcgpredict/presets"
	"github.com/katalvlaran/lcgpredict/width"
)

// ctxCheckEvery is how many simulated steps run between context checks.
const ctxCheckEvery = 1 << 16

// job carries everything execute needs independent of the word type.
type job struct {
	opts   Options
	preset presets.Preset
	state  string
	out    io.Writer
	stderr io.Writer
	log    *logx.Logger
}

// execute runs one query for word type T.
func execute[T width.Unsigned](ctx context.Context, j job) error {
	log := j.log.Section("lcgpredict")

	e, err := presets.Engine[T](j.preset)
	if err != nil {
		return err
	}
	if j.state != "" {
		if err = interop.Restore(e, j.state); err != nil {
			return err
		}
		if log.Enabled(logx.DEBUG) {
			log.Debugf("state restored to %s", interop.Snapshot(e))
		}
	}

	if j.opts.Dump {
		spew.Fdump(j.stderr, e)
	}

	if j.opts.Verify {
		if err = verify(ctx, j, e); err != nil {
			return err
		}
	}

	if j.opts.Count == 0 {
		_, err = fmt.Fprintln(j.out, interop.FormatState(e.ValueAfterNSteps(j.opts.N)))
		return err
	}

	e.Discard(j.opts.N)
	for i := 0; i < j.opts.Count; i++ {
		if _, err = fmt.Fprintln(j.out, interop.FormatState(e.Step())); err != nil {
			return err
		}
	}
	return nil
}

// verify checks the preset reference data (when the generator is unmodified)
// and then that n sequential steps land where ValueAfterNSteps(n) predicts.
func verify[T width.Unsigned](ctx context.Context, j job, e *engine.Engine[T]) error {
	log := j.log.Section("verify")

	tables := len(j.preset.Reference) > 0 || len(j.preset.Checkpoints) > 0
	if tables && j.state != "" {
		log.Warnf("%s: reference outputs skipped for a restored state", j.preset.Name)
	}
	if tables && j.state == "" {
		if err := presets.Verify[T](ctx, j.preset); err != nil {
			return fmt.Errorf("%w: %w", ErrMismatch, err)
		}
		log.Infof("%s: %d reference outputs and %d checkpoints match",
			j.preset.Name, len(j.preset.Reference), len(j.preset.Checkpoints))
	}

	n := j.opts.N
	sim := e.Clone()
	for i := uint64(0); i < n; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("verify: %w after %d of %d steps", err, i, n)
			}
		}
		sim.Step()
	}
	want := e.ValueAfterNSteps(n)
	if got := sim.State(); got != want {
		return fmt.Errorf("%w: %d simulated steps give %d, prediction gives %d",
			ErrMismatch, n, uint64(got), uint64(want))
	}
	log.Infof("simulation of %d steps matches the prediction", n)
	return nil
}
