// SPDX-License-Identifier: MIT

// Package affine models one LCG step as the affine map
//
//	f(x) = (a*x + c) mod M
//
// and provides the algebra needed to jump ahead: composition, coefficientwise
// addition, and exponentiation under composition.
//
// Composition of affine maps is again affine:
//
//	f(g(x)) = f.a*(g.a*x + g.c) + f.c = (f.a*g.a)*x + (f.a*g.c + f.c)
//
// so n sequential LCG steps collapse into a single Transform computed by
// Powered(n) with O(log n) compositions (package combine).
//
// A Transform is an immutable value. Its modulus is fixed at construction;
// WithModulus returns a new Transform with renormalized coefficients.
// Combining transforms with different moduli is a programmer error and
// panics with ErrModulusMismatch.
package affine
