// SPDX-License-Identifier: MIT

package affine

import (
	"fmt"

	"github.com/katalvlaran/lcgpredict/combine"
	"github.com/katalvlaran/lcgpredict/modular"
	"github.com/katalvlaran/lcgpredict/width"
)

// Transform is the map x -> (a*x + c) mod M over words of type T.
// a and c are always canonical residues in [0, M).
type Transform[T width.Unsigned] struct {
	mod modular.Modder[T]
	a   T
	c   T
}

// New returns the transform x -> (a*x + c) mod m, with m == 0 meaning 2^W.
// a and c are reduced modulo M.
func New[T width.Unsigned](a, c, m T) Transform[T] {
	md := modular.New(m)
	return Transform[T]{mod: md, a: md.Mod(a), c: md.Mod(c)}
}

// Identity returns x -> x modulo m, the unit of composition.
func Identity[T width.Unsigned](m T) Transform[T] {
	return New[T](1, 0, m)
}

// Compose returns h with h(x) = f(g(x)). f and g must share a modulus.
func Compose[T width.Unsigned](f, g Transform[T]) Transform[T] {
	return f.Compose(g)
}

// A returns the multiplier.
func (f Transform[T]) A() T { return f.a }

// C returns the increment.
func (f Transform[T]) C() T { return f.c }

// M returns the stored modulus (0 for 2^W).
func (f Transform[T]) M() T { return f.mod.M() }

// Modder returns the modular arithmetic context of f.
func (f Transform[T]) Modder() modular.Modder[T] { return f.mod }

// Apply returns f(x) = (a*x + c) mod M; one LCG step.
func (f Transform[T]) Apply(x T) T {
	return f.mod.TimesPlusMod(f.a, x, f.c)
}

// Compatible reports whether g uses the same modulus as f.
func (f Transform[T]) Compatible(g Transform[T]) bool {
	return f.mod.Equal(g.mod)
}

// Add returns the coefficientwise sum (f.a+g.a, f.c+g.c) mod M.
func (f Transform[T]) Add(g Transform[T]) Transform[T] {
	f.mustMatch("Add", g)
	return Transform[T]{
		mod: f.mod,
		a:   f.mod.PlusMod(f.a, g.a),
		c:   f.mod.PlusMod(f.c, g.c),
	}
}

// Sub returns the coefficientwise difference (f.a-g.a, f.c-g.c) mod M.
func (f Transform[T]) Sub(g Transform[T]) Transform[T] {
	f.mustMatch("Sub", g)
	return Transform[T]{
		mod: f.mod,
		a:   f.mod.MinusMod(f.a, g.a),
		c:   f.mod.MinusMod(f.c, g.c),
	}
}

// Compose returns h with h(x) = f(g(x)):
//
//	h.a = f.a * g.a       (mod M)
//	h.c = f.a * g.c + f.c (mod M)
func (f Transform[T]) Compose(g Transform[T]) Transform[T] {
	f.mustMatch("Compose", g)
	return Transform[T]{
		mod: f.mod,
		a:   f.mod.TimesMod(f.a, g.a),
		c:   f.mod.TimesPlusMod(f.a, g.c, f.c),
	}
}

// Identity returns the identity transform for the modulus of f.
func (f Transform[T]) Identity() Transform[T] {
	return Identity(f.mod.M())
}

// Powered returns f composed with itself n times (Identity for n == 0).
//
// Complexity: O(log2 n) compositions, each O(1) modular operations.
func (f Transform[T]) Powered(n uint64) Transform[T] {
	return combine.Power(f, n, Compose[T], f.Identity())
}

// Inverse returns f⁻¹(x) = a⁻¹*x - a⁻¹*c when a is invertible modulo M.
// It reports false when gcd(a, M) != 1; the step is then not reversible.
func (f Transform[T]) Inverse() (Transform[T], bool) {
	inv, ok := f.mod.Inverse(f.a)
	if !ok {
		return Transform[T]{}, false
	}
	return Transform[T]{
		mod: f.mod,
		a:   inv,
		c:   f.mod.MinusMod(0, f.mod.TimesMod(inv, f.c)),
	}, true
}

// Min returns the smallest output the generator can reach: 1 when c == 0,
// since a zero increment never leaves a nonzero orbit, otherwise 0.
func (f Transform[T]) Min() T {
	if f.c == 0 {
		return 1
	}
	return 0
}

// Max returns M - 1; for the 2^W sentinel this is the largest T.
func (f Transform[T]) Max() T {
	return f.mod.M() - 1
}

// Equal reports structural equality of (a, c, m).
func (f Transform[T]) Equal(g Transform[T]) bool {
	return f.mod.Equal(g.mod) && f.a == g.a && f.c == g.c
}

// WithA returns a copy of f with multiplier a (reduced modulo M).
func (f Transform[T]) WithA(a T) Transform[T] {
	f.a = f.mod.Mod(a)
	return f
}

// WithC returns a copy of f with increment c (reduced modulo M).
func (f Transform[T]) WithC(c T) Transform[T] {
	f.c = f.mod.Mod(c)
	return f
}

// WithModulus returns a copy of f working modulo m, with a and c
// renormalized to the new modulus.
func (f Transform[T]) WithModulus(m T) Transform[T] {
	return New(f.a, f.c, m)
}

// String renders f as "x -> (a*x + c) mod M".
func (f Transform[T]) String() string {
	return fmt.Sprintf("x -> (%d*x + %d) mod %s", uint64(f.a), uint64(f.c), f.mod.Modulus())
}

// mustMatch panics with ErrModulusMismatch when g uses another modulus.
func (f Transform[T]) mustMatch(op string, g Transform[T]) {
	if !f.Compatible(g) {
		panic(fmt.Errorf("affine: %s: %w (%s vs %s)", op, ErrModulusMismatch, f.mod.Modulus(), g.mod.Modulus()))
	}
}
