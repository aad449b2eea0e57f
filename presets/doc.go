// SPDX-License-Identifier: MIT

// Package presets holds named generator parameter records and turns them into
// engines.
//
// A Preset is pure data: the word width W the generator was designed for, the
// coefficients (a, c, m) with m == 0 meaning 2^W, an optional seed, and
// optional reference outputs used for verification. The built-in catalog
// covers common library generators:
//
//	krc_rand      K&R C / C standard example rand
//	minstd_rand   C++ std::minstd_rand
//	minstd_rand0  C++ std::minstd_rand0
//	msvc_rand     MSVC std::rand (state, before output shifting)
//	posix_rand48  POSIX *rand48
//	musl_rand     musl rand (state, before output shifting)
//
// Catalogs can also be loaded from YAML (gopkg.in/yaml.v2) or TOML
// (github.com/BurntSushi/toml) files holding a list under the key "presets".
// Numbers may be written as integers or as strings; strings accept 0x, 0o and
// 0b prefixes and are required in TOML for values above 2^63-1.
//
// Transform and Engine instantiate a preset for a concrete word type T.
// T must be at least as wide as the preset; a preset using the 2^W sentinel
// gets an explicit modulus when T is wider.
package presets
