// SPDX-License-Identifier: MIT

package modular

import (
	"github.com/katalvlaran/lcgpredict/combine"
	"github.com/katalvlaran/lcgpredict/width"
)

// Modder performs arithmetic modulo M over words of type T.
// The zero value has m == 0 and therefore works modulo 2^W.
type Modder[T width.Unsigned] struct {
	m T
}

// New returns a Modder for the stored modulus m (0 means 2^W).
func New[T width.Unsigned](m T) Modder[T] {
	return Modder[T]{m: m}
}

// M returns the stored modulus, 0 for the 2^W sentinel.
func (md Modder[T]) M() T { return md.m }

// IsNative reports whether the modulus is the 2^W sentinel.
func (md Modder[T]) IsNative() bool { return md.m == 0 }

// Modulus returns the true modulus M, which is 2^W for the sentinel.
func (md Modder[T]) Modulus() width.Wide {
	if md.m != 0 {
		return width.Widen(md.m)
	}
	return width.PowerOfTwo(width.Bits[T]())
}

// Equal reports whether both Modders use the same modulus.
func (md Modder[T]) Equal(o Modder[T]) bool { return md.m == o.m }

// Mod returns x mod M.
func (md Modder[T]) Mod(x T) T {
	if md.m == 0 {
		return x
	}
	return x % md.m
}

// ModWide returns x mod M for a 128-bit x.
func (md Modder[T]) ModWide(x width.Wide) T {
	if md.m == 0 {
		// Truncation to W bits is reduction modulo 2^W.
		return T(x.Lo)
	}
	_, r := x.QuoRem64(uint64(md.m))
	return T(r)
}

// ModInt64 returns the canonical residue of a signed x: the remainder is
// taken on |x| and negative results are shifted up by M.
func (md Modder[T]) ModInt64(x int64) T {
	if x >= 0 {
		return md.reduce(uint64(x))
	}
	// -(x+1)+1 stays in range for math.MinInt64.
	r := md.reduce(uint64(-(x + 1)) + 1)
	if r == 0 {
		return 0
	}
	return md.negate(r)
}

// PlusMod returns the sum of xs mod M; the empty sum is 0.
func (md Modder[T]) PlusMod(xs ...T) T {
	var acc T
	for _, x := range xs {
		acc = md.mulAdd(acc, 1, x, 0)
	}
	return acc
}

// MinusMod returns (x - y) mod M.
func (md Modder[T]) MinusMod(x, y T) T {
	x, y = md.Mod(x), md.Mod(y)
	if x >= y {
		return x - y
	}
	return md.negate(y - x)
}

// TimesMod returns the product of xs mod M; the empty product is Mod(1).
func (md Modder[T]) TimesMod(xs ...T) T {
	acc := md.Mod(1)
	for _, x := range xs {
		acc = md.mulAdd(acc, x, 0, 0)
	}
	return acc
}

// TimesPlusMod returns (x*y + z) mod M.
func (md Modder[T]) TimesPlusMod(x, y, z T) T {
	return md.mulAdd(x, y, z, 0)
}

// TimesPlusPlusMod returns (x*y + z + w) mod M.
func (md Modder[T]) TimesPlusPlusMod(x, y, z, w T) T {
	return md.mulAdd(x, y, z, w)
}

// PowMod returns base^e mod M in O(log e) multiplications.
func (md Modder[T]) PowMod(base T, e uint64) T {
	mul := func(x, y T) T { return md.mulAdd(x, y, 0, 0) }
	return combine.Power(md.Mod(base), e, mul, md.Mod(1))
}

// mulAdd is the single reduction kernel: (x*y + z + w) mod M computed in the
// doubled precision of T. For W <= 32 the worst case is exactly 2^64-1; for
// W == 64 it is exactly 2^128-1, so neither path can overflow.
func (md Modder[T]) mulAdd(x, y, z, w T) T {
	if width.Native[T]() {
		return md.reduce(uint64(x)*uint64(y) + uint64(z) + uint64(w))
	}
	p := width.Widen(x).Mul64(uint64(y)).Add64(uint64(z)).Add64(uint64(w))
	return md.ModWide(p)
}

// reduce maps a uint64 intermediate into [0, M).
func (md Modder[T]) reduce(x uint64) T {
	if md.m == 0 {
		return T(x)
	}
	return T(x % uint64(md.m))
}

// negate returns M - r for r in (0, M).
func (md Modder[T]) negate(r T) T {
	if md.m == 0 {
		return -r
	}
	return md.m - r
}
