// SPDX-License-Identifier: MIT

package modular

import "github.com/katalvlaran/lcgpredict/width"

// Inverse returns y with x*y ≡ 1 (mod M), or (0, false) when
// gcd(x, M) != 1 and no inverse exists. For M == 1 every residue is 0 and
// (0, true) is returned.
//
// Extended Euclid runs on 128-bit remainders so that the sentinel modulus
// 2^W is handled like any other. Only the Bézout coefficient of x is
// tracked, and it is kept reduced mod M, so no signed intermediates are
// needed.
//
// Complexity: O(log M) divisions.
func (md Modder[T]) Inverse(x T) (T, bool) {
	r0, r1 := md.Modulus(), width.Widen(md.Mod(x))
	t0, t1 := T(0), md.Mod(1)
	// Invariant: r_i ≡ t_i * x (mod M).
	for !r1.IsZero() {
		q, r := r0.QuoRem(r1)
		r0, r1 = r1, r
		t0, t1 = t1, md.MinusMod(t0, md.TimesMod(md.ModWide(q), t1))
	}
	if !r0.Equals64(1) {
		return 0, false
	}
	return t0, true
}

// Coprime reports whether x is invertible modulo M.
func (md Modder[T]) Coprime(x T) bool {
	_, ok := md.Inverse(x)
	return ok
}
