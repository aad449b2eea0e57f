// SPDX-License-Identifier: MIT

package width

import (
	"math/bits"
	"strconv"

	"lukechampine.com/uint128"
)

// Unsigned is the set of word types an LCG state may be stored in.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Wide is the 128-bit intermediate used when T is 64 bits wide.
type Wide = uint128.Uint128

// Kind names an intermediate integer type by its width in bits.
type Kind uint

const (
	Uint16  Kind = 16
	Uint32  Kind = 32
	Uint64  Kind = 64
	Uint128 Kind = 128
)

// native kinds in ascending order; Uint128 is the fallback.
var natives = [...]Kind{Uint16, Uint32, Uint64}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return "uint" + strconv.FormatUint(uint64(k), 10)
}

// Doubled returns the smallest kind at least 2*w bits wide.
// Widths above 32 always select Uint128.
func Doubled(w uint) Kind {
	for _, k := range natives {
		if uint(k) >= 2*w {
			return k
		}
	}
	return Uint128
}

// Bits returns the width of T in bits.
func Bits[T Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Max returns the largest value of T.
func Max[T Unsigned]() T {
	return ^T(0)
}

// DoubledOf is Doubled(Bits[T]()).
func DoubledOf[T Unsigned]() Kind {
	return Doubled(Bits[T]())
}

// Native reports whether the doubled kind of T fits in a uint64, i.e.
// whether x*y + z + w never overflows uint64 for any T values x, y, z, w.
func Native[T Unsigned]() bool {
	return DoubledOf[T]() != Uint128
}

// Widen lifts x into the 128-bit intermediate.
func Widen[T Unsigned](x T) Wide {
	return uint128.From64(uint64(x))
}

// PowerOfTwo returns 2^n as a Wide. n must be below 128.
func PowerOfTwo(n uint) Wide {
	return uint128.From64(1).Lsh(n)
}
