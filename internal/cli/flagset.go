// SPDX-License-Identifier: MIT

package cli

import (
	"flag"
	"fmt"
)

// NewFlagSet returns a FlagSet with ContinueOnError and the lcgpredict usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: predict linear congruential generator outputs by skip-ahead

Pick a generator with -preset NAME or give -a, -c and -m (m = 0 means 2^width).
Prints the state after -n steps, or the next -count states after it.

Usage of %s:
`, name, name)
		fs.PrintDefaults()
	}
	return fs
}
