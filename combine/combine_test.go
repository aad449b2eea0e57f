// SPDX-License-Identifier: MIT

package combine_test

import (
	"math/bits"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lcgpredict/combine"
)

func add(x, y uint64) uint64 { return x + y }

func concat(x, y string) string { return x + y }

// mat2 is a 2x2 integer matrix; its product is associative but not commutative.
type mat2 [4]uint64

func mul2(x, y mat2) mat2 {
	return mat2{
		x[0]*y[0] + x[1]*y[2], x[0]*y[1] + x[1]*y[3],
		x[2]*y[0] + x[3]*y[2], x[2]*y[1] + x[3]*y[3],
	}
}

var eye2 = mat2{1, 0, 0, 1}

// TestPower_ZeroReturnsUnit verifies n == 0 never calls op on the element.
func TestPower_ZeroReturnsUnit(t *testing.T) {
	calls := 0
	op := func(x, y int) int { calls++; return x * y }
	assert.Equal(t, 1, combine.Power(7, 0, op, 1))
	assert.Equal(t, "", combine.Power("ab", 0, concat, ""))
	assert.Zero(t, calls)
}

// TestPower_Addition checks n-fold addition equals multiplication.
func TestPower_Addition(t *testing.T) {
	for n := uint64(0); n < 200; n++ {
		assert.Equalf(t, 3*n, combine.Power(3, n, add, 0), "n=%d", n)
	}
}

// TestPower_NonCommutative uses string concatenation, which is associative only.
func TestPower_NonCommutative(t *testing.T) {
	assert.Equal(t, strings.Repeat("ab", 13), combine.Power("ab", 13, concat, ""))
	assert.Equal(t, "ab", combine.Power("ab", 1, concat, ""))
}

// TestPower_MatrixFibonacci computes Fibonacci numbers via [[1,1],[1,0]]^n.
func TestPower_MatrixFibonacci(t *testing.T) {
	q := mat2{1, 1, 1, 0}
	fib := []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	for n, want := range fib {
		got := combine.Power(q, uint64(n), mul2, eye2)
		assert.Equalf(t, want, got[1], "F(%d)", n)
	}
	assert.Equal(t, uint64(12586269025), combine.Power(q, 50, mul2, eye2)[1], "F(50)")
}

// TestPower_LogarithmicCalls bounds the number of op applications by 2*bitlen(n).
func TestPower_LogarithmicCalls(t *testing.T) {
	for _, n := range []uint64{1, 2, 3, 1000, 1 << 40, 1<<63 + 12345, ^uint64(0)} {
		calls := 0
		op := func(x, y uint64) uint64 { calls++; return x + y }
		combine.Power(1, n, op, 0)
		assert.LessOrEqualf(t, calls, 2*bits.Len64(n), "n=%d", n)
	}
}

// TestPowerOf_Monoid verifies the interface form agrees with the function form.
func TestPowerOf_Monoid(t *testing.T) {
	m := combine.Func[string]{Op: concat, Unit: ""}
	assert.Equal(t, "xyzxyzxyz", combine.PowerOf[string](m, "xyz", 3))
	assert.Equal(t, "", m.Identity())
	assert.Equal(t, combine.Power(uint64(5), 77, add, 0),
		combine.PowerOf[uint64](combine.Func[uint64]{Op: add}, 5, 77))
}
