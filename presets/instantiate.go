// SPDX-License-Identifier: MIT

package presets

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lcgpredict/affine"
	"github.com/katalvlaran/lcgpredict/engine"
	"github.com/katalvlaran/lcgpredict/width"
)

// Transform instantiates the step transform of p for word type T.
// It fails with ErrWidthOverflow when T has fewer than p.Width bits.
func Transform[T width.Unsigned](p Preset) (affine.Transform[T], error) {
	if err := p.Validate(); err != nil {
		return affine.Transform[T]{}, fmt.Errorf("Transform: %w", err)
	}
	w := width.Bits[T]()
	if w < p.Width {
		return affine.Transform[T]{}, fmt.Errorf("Transform: %w: %s needs %d bits, %s has %d",
			ErrWidthOverflow, p.Name, p.Width, width.Kind(w), w)
	}
	m := T(p.M)
	if p.M == 0 && w > p.Width {
		m = T(1) << p.Width
	}
	return affine.New(T(p.A), T(p.C), m), nil
}

// Engine instantiates p for word type T, seeded with p.Seed when set
// (engine.DefaultSeed otherwise). opts are applied after the preset seed.
func Engine[T width.Unsigned](p Preset, opts ...engine.Option[T]) (*engine.Engine[T], error) {
	t, err := Transform[T](p)
	if err != nil {
		return nil, err
	}
	all := make([]engine.Option[T], 0, len(opts)+1)
	if p.Seed != nil {
		all = append(all, engine.WithSeed(T(*p.Seed)))
	}
	all = append(all, opts...)
	return engine.New(t, all...), nil
}

// Verify instantiates p for T and checks its reference outputs by both
// sequential stepping and skip-ahead, then each checkpoint by skip-ahead.
// ctx is checked between reference entries.
func Verify[T width.Unsigned](ctx context.Context, p Preset) error {
	e, err := Engine[T](p)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}

	sim := e.Clone()
	for i, ref := range p.Reference {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("Verify: %w", err)
		}
		step := uint64(i) + 1
		want := T(ref)
		if got := sim.Step(); got != want {
			return fmt.Errorf("Verify: %w: %s step %d simulated %d, want %d",
				ErrReferenceMismatch, p.Name, step, uint64(got), uint64(want))
		}
		if got := e.ValueAfterNSteps(step); got != want {
			return fmt.Errorf("Verify: %w: %s step %d predicted %d, want %d",
				ErrReferenceMismatch, p.Name, step, uint64(got), uint64(want))
		}
	}

	for _, cp := range p.Checkpoints {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("Verify: %w", err)
		}
		if got := e.ValueAfterNSteps(uint64(cp.Steps)); got != T(cp.Value) {
			return fmt.Errorf("Verify: %w: %s checkpoint %d predicted %d, want %d",
				ErrReferenceMismatch, p.Name, cp.Steps, uint64(got), cp.Value)
		}
	}
	return nil
}
