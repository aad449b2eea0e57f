// SPDX-License-Identifier: MIT

package presets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// LoadYAML decodes and validates a catalog. Unknown keys are rejected.
func LoadYAML(r io.Reader) (Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Catalog{}, fmt.Errorf("LoadYAML: %w", err)
	}
	var c Catalog
	if err = yaml.UnmarshalStrict(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("LoadYAML: %w: %v", ErrInvalidPreset, err)
	}
	if err = c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("LoadYAML: %w", err)
	}
	return c, nil
}

// LoadTOML decodes and validates a catalog. Unknown keys are rejected.
func LoadTOML(r io.Reader) (Catalog, error) {
	var c Catalog
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Catalog{}, fmt.Errorf("LoadTOML: %w: %v", ErrInvalidPreset, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Catalog{}, fmt.Errorf("LoadTOML: %w: unknown keys %q", ErrInvalidPreset, undecoded)
	}
	if err = c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("LoadTOML: %w", err)
	}
	return c, nil
}

// LoadFile picks the decoder by extension: .yaml and .yml for YAML, .toml for TOML.
func LoadFile(path string) (Catalog, error) {
	var load func(io.Reader) (Catalog, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".toml":
		load = LoadTOML
	default:
		return Catalog{}, fmt.Errorf("LoadFile: %w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	c, err := load(f)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
