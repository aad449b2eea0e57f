// SPDX-License-Identifier: MIT

package presets

import (
	"fmt"
	"math/bits"
)

// Preset describes one named generator.
type Preset struct {
	Name        string       `yaml:"name" toml:"name"`
	Description string       `yaml:"description,omitempty" toml:"description,omitempty"`
	Width       uint         `yaml:"width" toml:"width"`
	A           Number       `yaml:"a" toml:"a"`
	C           Number       `yaml:"c" toml:"c"`
	M           Number       `yaml:"m" toml:"m"` // 0 means 2^Width
	Seed        *Number      `yaml:"seed,omitempty" toml:"seed,omitempty"`
	Reference   []Number     `yaml:"reference,omitempty" toml:"reference,omitempty"`
	Checkpoints []Checkpoint `yaml:"checkpoints,omitempty" toml:"checkpoints,omitempty"`
}

// Checkpoint pins the state after Steps steps from the seed.
type Checkpoint struct {
	Steps Number `yaml:"steps" toml:"steps"`
	Value Number `yaml:"value" toml:"value"`
}

// Catalog is an ordered list of presets with unique names.
type Catalog struct {
	Presets []Preset `yaml:"presets" toml:"presets"`
}

// Validate checks the record for internal consistency: a non-empty name,
// a width of 8, 16, 32 or 64 bits, and every number fitting in that width.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPreset)
	}
	switch p.Width {
	case 8, 16, 32, 64:
	default:
		return fmt.Errorf("%w: %s: width %d not in {8, 16, 32, 64}", ErrInvalidPreset, p.Name, p.Width)
	}

	check := func(field string, v Number) error {
		if uint(bits.Len64(uint64(v))) > p.Width {
			return fmt.Errorf("%w: %s: %s=%d exceeds %d bits", ErrInvalidPreset, p.Name, field, v, p.Width)
		}
		return nil
	}
	for _, f := range []struct {
		name string
		v    Number
	}{{"a", p.A}, {"c", p.C}, {"m", p.M}} {
		if err := check(f.name, f.v); err != nil {
			return err
		}
	}
	if p.Seed != nil {
		if err := check("seed", *p.Seed); err != nil {
			return err
		}
	}
	for i, r := range p.Reference {
		if err := check(fmt.Sprintf("reference[%d]", i), r); err != nil {
			return err
		}
	}
	for i, cp := range p.Checkpoints {
		if err := check(fmt.Sprintf("checkpoints[%d].value", i), cp.Value); err != nil {
			return err
		}
	}
	return nil
}

// SeedOr returns the recorded seed, or def when none is set.
func (p Preset) SeedOr(def uint64) uint64 {
	if p.Seed == nil {
		return def
	}
	return uint64(*p.Seed)
}

// String renders the preset parameters on one line.
func (p Preset) String() string {
	m := p.M.String()
	if p.M == 0 {
		m = fmt.Sprintf("2^%d", p.Width)
	}
	return fmt.Sprintf("%s: a=%d c=%d m=%s width=%d", p.Name, p.A, p.C, m, p.Width)
}

// Validate checks every preset and rejects duplicate names.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Presets))
	for _, p := range c.Presets {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidPreset, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// Find returns the preset called name.
func (c Catalog) Find(name string) (Preset, error) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Names lists preset names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		out[i] = p.Name
	}
	return out
}

// Merge returns a catalog holding c followed by the presets of o; a preset
// in o replaces the one with the same name in c, keeping its position.
func (c Catalog) Merge(o Catalog) Catalog {
	out := Catalog{Presets: make([]Preset, 0, len(c.Presets)+len(o.Presets))}
	index := make(map[string]int, len(c.Presets)+len(o.Presets))
	for _, list := range [][]Preset{c.Presets, o.Presets} {
		for _, p := range list {
			if i, ok := index[p.Name]; ok {
				out.Presets[i] = p
				continue
			}
			index[p.Name] = len(out.Presets)
			out.Presets = append(out.Presets, p)
		}
	}
	return out
}

// clone deep-copies the slices of p.
func (p Preset) clone() Preset {
	if p.Seed != nil {
		s := *p.Seed
		p.Seed = &s
	}
	p.Reference = append([]Number(nil), p.Reference...)
	p.Checkpoints = append([]Checkpoint(nil), p.Checkpoints...)
	return p
}
