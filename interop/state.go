// SPDX-License-Identifier: MIT

package interop

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lukechampine.com/uint128"

	"github.com/katalvlaran/lcgpredict/affine"
	"github.com/katalvlaran/lcgpredict/engine"
	"github.com/katalvlaran/lcgpredict/width"
)

// ParseState parses the first whitespace-separated token of text as a
// state word of type T.
func ParseState[T width.Unsigned](text string) (T, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, fmt.Errorf("ParseState: %w", ErrEmptyState)
	}
	return parseToken[T](fields[0])
}

// ReadState reads the first whitespace-separated token from r and parses it.
func ReadState[T width.Unsigned](r io.Reader) (T, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("ReadState: %w", err)
		}
		return 0, fmt.Errorf("ReadState: %w", ErrEmptyState)
	}
	return parseToken[T](sc.Text())
}

// FormatState renders x in the reference decimal format.
func FormatState[T width.Unsigned](x T) string {
	return strconv.FormatUint(uint64(x), 10)
}

// Bootstrap returns an engine stepping with t from the state in text.
// The state is reduced modulo t.M().
func Bootstrap[T width.Unsigned](t affine.Transform[T], text string) (*engine.Engine[T], error) {
	s, err := ParseState[T](text)
	if err != nil {
		return nil, fmt.Errorf("Bootstrap: %w", err)
	}
	return engine.New(t, engine.WithSeed(s)), nil
}

// Restore replaces the state of e with the one in text.
// e is unchanged on error.
func Restore[T width.Unsigned](e *engine.Engine[T], text string) error {
	s, err := ParseState[T](text)
	if err != nil {
		return fmt.Errorf("Restore: %w", err)
	}
	e.SetState(s)
	return nil
}

// Snapshot renders the state of e in the reference format.
func Snapshot[T width.Unsigned](e *engine.Engine[T]) string {
	return FormatState(e.State())
}

// parseToken checks tok is all ASCII digits and fits in T.
// Digits are accumulated in 128 bits so a 64-bit overflow is detected
// rather than wrapped.
func parseToken[T width.Unsigned](tok string) (T, error) {
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrMalformedState, tok)
		}
	}
	// FromString treats a leading 0 as an octal prefix.
	digits := strings.TrimLeft(tok, "0")
	if digits == "" {
		digits = "0"
	}
	v, err := uint128.FromString(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrStateOverflow, tok)
	}
	if v.Cmp(width.Widen(width.Max[T]())) > 0 {
		return 0, fmt.Errorf("%w: %s > %d", ErrStateOverflow, v, uint64(width.Max[T]()))
	}
	return T(v.Lo), nil
}
