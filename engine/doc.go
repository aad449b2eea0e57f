// SPDX-License-Identifier: MIT

// Package engine provides a stateful linear congruential generator with
// O(log n) skip-ahead.
//
// An Engine holds one affine.Transform and the current state. Step advances
// the state by one application of the transform, exactly like a textbook LCG:
//
//	state = (a*state + c) mod M
//
// ValueAfterNSteps predicts the state n steps ahead without mutating the
// engine by applying Transform.Powered(n) to the current state, and Discard
// jumps there. When the multiplier is invertible modulo M the generator can
// also be walked backwards (ValueBeforeNSteps, Retreat).
//
// The state is kept in [0, M) at every observation point; seeds and mutated
// parameters are reduced on entry.
//
// An Engine is not safe for concurrent mutation. Clone it to hand an
// independent copy to another goroutine.
//
// Example:
//
//	e := engine.FromParams[uint32](48271, 0, 2147483647)
//	_ = e.ValueAfterNSteps(10000) // 399268537
package engine
