// SPDX-License-Identifier: MIT

package presets

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed builtin.yaml
var builtinYAML []byte

var (
	builtinOnce sync.Once
	builtin     Catalog
)

// Builtin returns a fresh copy of the built-in catalog.
func Builtin() Catalog {
	builtinOnce.Do(func() {
		c, err := LoadYAML(bytes.NewReader(builtinYAML))
		if err != nil {
			panic(fmt.Sprintf("presets: built-in catalog: %v", err))
		}
		builtin = c
	})
	out := Catalog{Presets: make([]Preset, len(builtin.Presets))}
	for i, p := range builtin.Presets {
		out.Presets[i] = p.clone()
	}
	return out
}

// Names lists the built-in preset names.
func Names() []string {
	return Builtin().Names()
}

// Lookup returns the built-in preset called name.
func Lookup(name string) (Preset, error) {
	return Builtin().Find(name)
}
