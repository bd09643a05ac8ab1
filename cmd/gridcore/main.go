// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package main is the gridcore command line: it loads board scenarios and
// runs, inspects, and exports them.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/holomush/gridcore/pkg/errutil"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	if err := cmd.ExecuteContext(ctx); err != nil {
		errutil.LogError(slog.New(slog.NewTextHandler(os.Stderr, nil)), "gridcore failed", err)
		stop()
		os.Exit(1)
	}
}
