// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/lcgpredict/affine"
	"github.com/katalvlaran/lcgpredict/width"
)

// Engine is a linear congruential generator: one affine transform plus the
// current state. The zero value is not usable; construct with New or FromParams.
type Engine[T width.Unsigned] struct {
	affine affine.Transform[T]
	state  T
}

// New returns an engine stepping with t. The seed (DefaultSeed unless
// WithSeed is given) is reduced modulo t.M().
func New[T width.Unsigned](t affine.Transform[T], opts ...Option[T]) *Engine[T] {
	o := gatherOptions(opts)
	return &Engine[T]{
		affine: t,
		state:  t.Modder().Mod(o.Seed),
	}
}

// FromParams is New(affine.New(a, c, m), opts...). m == 0 means 2^W.
func FromParams[T width.Unsigned](a, c, m T, opts ...Option[T]) *Engine[T] {
	return New(affine.New(a, c, m), opts...)
}

// Step advances the state by one LCG step and returns the new state.
func (e *Engine[T]) Step() T {
	e.state = e.affine.Apply(e.state)
	return e.state
}

// ValueAfterNSteps returns the state n steps ahead without changing e.
// n == 0 returns the current state.
//
// Complexity: O(log2 n).
func (e *Engine[T]) ValueAfterNSteps(n uint64) T {
	return e.affine.Powered(n).Apply(e.state)
}

// Discard advances the state by n steps in O(log2 n).
func (e *Engine[T]) Discard(n uint64) {
	e.state = e.ValueAfterNSteps(n)
}

// ValueBeforeNSteps returns the state n steps back without changing e.
// It reports false when the multiplier has no inverse modulo M, since the
// step is then not injective.
func (e *Engine[T]) ValueBeforeNSteps(n uint64) (T, bool) {
	inv, ok := e.affine.Inverse()
	if !ok {
		return 0, false
	}
	return inv.Powered(n).Apply(e.state), true
}

// Retreat moves the state n steps back. On false the state is untouched.
func (e *Engine[T]) Retreat(n uint64) bool {
	prev, ok := e.ValueBeforeNSteps(n)
	if ok {
		e.state = prev
	}
	return ok
}

// Simulate returns the outputs of k sequential steps taken on a copy of e.
func (e *Engine[T]) Simulate(k int) []T {
	if k <= 0 {
		return nil
	}
	cp := e.Clone()
	out := make([]T, k)
	for i := range out {
		out[i] = cp.Step()
	}
	return out
}

// Predict returns ValueAfterNSteps(1..k), each computed by skip-ahead.
func (e *Engine[T]) Predict(k int) []T {
	if k <= 0 {
		return nil
	}
	out := make([]T, k)
	for i := range out {
		out[i] = e.ValueAfterNSteps(uint64(i) + 1)
	}
	return out
}

// Clone returns an independent copy of e.
func (e *Engine[T]) Clone() *Engine[T] {
	cp := *e
	return &cp
}

// A returns the multiplier.
func (e *Engine[T]) A() T { return e.affine.A() }

// C returns the increment.
func (e *Engine[T]) C() T { return e.affine.C() }

// M returns the stored modulus (0 for 2^W).
func (e *Engine[T]) M() T { return e.affine.M() }

// Affine returns the step transform.
func (e *Engine[T]) Affine() affine.Transform[T] { return e.affine }

// State returns the current state.
func (e *Engine[T]) State() T { return e.state }

// Min returns the smallest value Step can produce.
func (e *Engine[T]) Min() T { return e.affine.Min() }

// Max returns the largest value Step can produce.
func (e *Engine[T]) Max() T { return e.affine.Max() }

// SetA replaces the multiplier (reduced modulo M).
func (e *Engine[T]) SetA(a T) { e.affine = e.affine.WithA(a) }

// SetC replaces the increment (reduced modulo M).
func (e *Engine[T]) SetC(c T) { e.affine = e.affine.WithC(c) }

// SetM switches to modulus m and reduces a, c and the state under it.
func (e *Engine[T]) SetM(m T) {
	e.SetAffine(e.affine.WithModulus(m))
}

// SetAffine replaces the transform and reduces the state under its modulus.
func (e *Engine[T]) SetAffine(t affine.Transform[T]) {
	e.affine = t
	e.state = t.Modder().Mod(e.state)
}

// SetState replaces the state (reduced modulo M).
func (e *Engine[T]) SetState(seed T) {
	e.state = e.affine.Modder().Mod(seed)
}

// Equal reports whether e and o share the transform and the state.
func (e *Engine[T]) Equal(o *Engine[T]) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.affine.Equal(o.affine) && e.state == o.state
}

// String renders the transform and the current state.
func (e *Engine[T]) String() string {
	return fmt.Sprintf("%s state=%d", e.affine, uint64(e.state))
}
