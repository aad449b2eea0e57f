// SPDX-License-Identifier: MIT

// Package combine implements generalized binary exponentiation
// ("double-and-add") over any associative binary operation.
//
// Power(e, n, op, unit) returns e op e op ... op e (n copies), or unit when
// n == 0, using O(log2 n) applications of op instead of n-1.
//
// Only associativity is required. Every intermediate value is a power of
// the same element e, and powers of one element always commute, so
// non-commutative operations (matrix products, function composition,
// string concatenation) give correct results.
package combine

// Power returns the n-fold self-combination of elem under op.
//
// unit must be the identity of op. The bits of n are consumed from least to
// most significant: the running square is folded into the accumulator when
// the bit is set, then squared again.
//
// Complexity: O(log2 n) calls to op, O(1) extra space.
func Power[T any](elem T, n uint64, op func(T, T) T, unit T) T {
	result := unit
	v := elem
	for ; n != 0; n >>= 1 {
		if n&1 != 0 {
			result = op(result, v)
		}
		v = op(v, v)
	}
	return result
}

// Monoid is an associative operation together with its identity element.
type Monoid[T any] interface {
	Combine(x, y T) T
	Identity() T
}

// PowerOf is Power expressed over a Monoid.
func PowerOf[T any](m Monoid[T], elem T, n uint64) T {
	return Power(elem, n, m.Combine, m.Identity())
}

// Func adapts a plain operation and unit into a Monoid.
type Func[T any] struct {
	Op   func(x, y T) T
	Unit T
}

// Combine applies f.Op.
func (f Func[T]) Combine(x, y T) T { return f.Op(x, y) }

// Identity returns f.Unit.
func (f Func[T]) Identity() T { return f.Unit }
