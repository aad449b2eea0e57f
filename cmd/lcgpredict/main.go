// SPDX-License-Identifier: MIT

// Command lcgpredict predicts linear congruential generator outputs.
//
//	lcgpredict -preset minstd_rand -n 10000
//	lcgpredict -a 1103515245 -c 12345 -m 2147483648 -width 32 -count 10
//	lcgpredict -preset musl_rand -state @state.txt -n 1000000 -verify
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lcgpredict/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := cli.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
