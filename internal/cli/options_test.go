// SPDX-License-Identifier: MIT

package cli

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcgpredict/internal/logx"
	"github.com/katalvlaran/lcgpredict/presets"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	require.NoError(t, err)
	return opts
}

func TestParseArgs_Preset(t *testing.T) {
	o := mustParse(t, "-preset", "minstd_rand", "-n", "10000", "-count", "3", "-verify")
	assert.Equal(t, "minstd_rand", o.Preset)
	assert.Equal(t, uint64(10000), o.N)
	assert.Equal(t, 3, o.Count)
	assert.True(t, o.Verify)
	assert.False(t, o.SetA || o.SetC || o.SetM || o.SetSeed)
	assert.Equal(t, presets.Number(1), o.Seed, "default seed")
	assert.Equal(t, logx.ColorAuto, o.Color)
}

func TestParseArgs_Custom(t *testing.T) {
	o := mustParse(t, "-a", "0x41C64E6D", "-c", "12345", "-m", "0x80000000", "-width", "32", "-seed", "7", "-color", "off")
	assert.True(t, o.SetA && o.SetC && o.SetM && o.SetSeed)
	assert.Equal(t, presets.Number(1103515245), o.A)
	assert.Equal(t, presets.Number(2147483648), o.M)
	assert.Equal(t, presets.Number(7), o.Seed)
	assert.Equal(t, uint(32), o.Width)
	assert.Equal(t, logx.ColorOff, o.Color)
}

func TestParseArgs_List(t *testing.T) {
	o := mustParse(t, "-list")
	assert.True(t, o.List)
}

func TestParseArgs_Errors(t *testing.T) {
	cases := map[string][]string{
		"no generator":   {"-n", "5"},
		"seed and state": {"-preset", "krc_rand", "-seed", "3", "-state", "9"},
		"negative count": {"-preset", "krc_rand", "-count", "-1"},
		"bad width":      {"-preset", "krc_rand", "-width", "24"},
		"bad number":     {"-a", "ten"},
		"negative a":     {"-a", "-3"},
		"bad color":      {"-preset", "krc_rand", "-color", "rainbow"},
		"positional":     {"-preset", "krc_rand", "extra"},
		"unknown flag":   {"-nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), args)
			assert.Error(t, err)
		})
	}

	_, err := ParseArgs(newFS(), []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}
