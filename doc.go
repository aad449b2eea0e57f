// SPDX-License-Identifier: MIT

// Package lcgpredict predicts the output of linear congruential generators
// at any future step in O(log n) instead of simulating n steps.
//
// One LCG step is the affine map x -> (a*x + c) mod m. Affine maps compose
// into affine maps, so n steps collapse into a single map obtained by binary
// exponentiation under composition. Given the parameters and the current
// state of a generator (C rand, std::minstd_rand, rand48, musl rand, ...)
// the n-th output is one modular multiply-add away.
//
// Layout, leaves first:
//
//	width/    unsigned word constraint and double-width selection (uint128 for 64-bit words)
//	combine/  generic binary exponentiation over any associative operation
//	modular/  overflow-free modular arithmetic with the 2^W sentinel modulus, inverses
//	affine/   the step transform algebra: compose, add, power, inverse
//	engine/   stateful generator: step, skip ahead, step back
//	presets/  named generator records, YAML/TOML catalogs, reference verification
//	interop/  textual state of reference implementations
//	cmd/lcgpredict command line front end
//
// Quick example:
//
//	e := engine.FromParams[uint32](48271, 0, 2147483647) // std::minstd_rand
//	e.ValueAfterNSteps(10000)                             // 399268537
//
//	go get github.com/katalvlaran/lcgpredict
package lcgpredict
