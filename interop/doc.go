// SPDX-License-Identifier: MIT

// Package interop reads and writes the textual state of reference LCG
// implementations.
//
// Library generators such as C++ std::linear_congruential_engine serialize
// their state as the decimal value of the current state word. ParseState and
// ReadState accept that format: the first whitespace-separated token, ASCII
// digits only, no sign. Bootstrap combines a parsed state with a transform to
// continue the reference sequence; Snapshot and Restore round-trip an
// engine through the same text.
package interop
