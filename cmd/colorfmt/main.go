// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Command colorfmt pretty-prints YAML, JSON and TOML documents.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jongio/colorfmt/cliout"
	"github.com/jongio/colorfmt/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		cliout.Error("%v", err)
		os.Exit(1)
	}
}
