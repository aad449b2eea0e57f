// SPDX-License-Identifier: MIT

package presets

import "errors"

var (
	// ErrUnknownPreset is returned when a name is not in the catalog.
	ErrUnknownPreset = errors.New("presets: unknown preset")

	// ErrWidthOverflow is returned when the word type is narrower than the preset.
	ErrWidthOverflow = errors.New("presets: word type narrower than preset width")

	// ErrUnsupportedFormat is returned for catalog files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("presets: unsupported catalog format")

	// ErrInvalidPreset is returned for malformed or inconsistent preset records.
	ErrInvalidPreset = errors.New("presets: invalid preset")

	// ErrReferenceMismatch is returned by Verify when an engine disagrees
	// with the recorded reference outputs.
	ErrReferenceMismatch = errors.New("presets: reference mismatch")
)
