// SPDX-License-Identifier: MIT

package interop

import "errors"

var (
	// ErrEmptyState is returned when the input holds no token.
	ErrEmptyState = errors.New("interop: empty state")

	// ErrMalformedState is returned when the token is not an unsigned decimal number.
	ErrMalformedState = errors.New("interop: malformed state")

	// ErrStateOverflow is returned when the value does not fit the word type.
	ErrStateOverflow = errors.New("interop: state overflows word type")
)
