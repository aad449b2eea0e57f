// SPDX-License-Identifier: MIT

// Package width picks the intermediate integer type used by modular
// arithmetic over an unsigned word type T.
//
// Every product of two T values, plus a couple of T-sized addends, must fit
// the intermediate before it is reduced. For a W-bit T that needs at least
// 2W bits:
//
//	T width   doubled kind
//	8         uint16
//	16        uint32
//	32        uint64
//	64        Wide (128-bit, lukechampine.com/uint128)
//
// Go has no native 128-bit integer, so the last row falls back to Wide.
// Callers query Native[T] to decide between the uint64 fast path and the
// Wide path; both are exact for every input.
package width
