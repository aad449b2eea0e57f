// SPDX-License-Identifier: MIT

package presets

import (
	"fmt"
	"strconv"
)

// Number is an unsigned 64-bit catalog value. It decodes from YAML and TOML
// integers as well as from strings, so values above the signed 64-bit range
// survive TOML.
type Number uint64

// UnmarshalText parses a decimal, 0x, 0o or 0b literal; underscores are allowed.
func (n *Number) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 0, 64)
	if err != nil {
		return fmt.Errorf("%w: number %q: %v", ErrInvalidPreset, text, err)
	}
	*n = Number(v)
	return nil
}

// UnmarshalYAML decodes a YAML scalar through its raw text.
func (n *Number) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}

// MarshalText renders n in decimal.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// String renders n in decimal.
func (n Number) String() string {
	return strconv.FormatUint(uint64(n), 10)
}
