// SPDX-License-Identifier: MIT

// Package modular provides overflow-safe arithmetic modulo a runtime
// modulus over an unsigned word type T.
//
// A Modder stores the modulus m in T itself. Because the largest useful
// modulus for a W-bit domain is 2^W, which T cannot hold, a stored value
// of 0 denotes 2^W (native wraparound). Any other stored value denotes
// itself, so the true modulus M always lies in [1, 2^W].
//
// Intermediate values are computed in the doubled type chosen by package
// width: a native uint64 for words up to 32 bits, the 128-bit width.Wide for
// 64-bit words. Products of two words plus two word-sized addends always fit,
// so every operation is total and exact. No operation returns an error and
// none divides by the sentinel.
//
// Operations:
//
//	Mod, ModWide, ModInt64    canonical residue in [0, M)
//	PlusMod, MinusMod         sum / difference
//	TimesMod                  product
//	TimesPlusMod              (x*y + z) mod M, the LCG step
//	TimesPlusPlusMod          (x*y + z + w) mod M
//	PowMod                    x^e via combine.Power, O(log e)
//	Inverse                   multiplicative inverse, if gcd(x, M) == 1
package modular
