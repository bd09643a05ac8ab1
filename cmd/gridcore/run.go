// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/gridcore/internal/board"
	"github.com/holomush/gridcore/internal/observability"
	"github.com/holomush/gridcore/internal/script"
)

// shutdownTimeout bounds how long the metrics server may take to stop.
const shutdownTimeout = 5 * time.Second

// NewRunCmd creates the run subcommand.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run SCENARIO",
		Short: "Execute a scenario's actions and print each outcome",
		Long: `Load a scenario, execute its actions for the actor in order, and print
one JSON object per action. Failed actions are reported, not fatal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hold, err := cmd.Flags().GetBool("hold")
			if err != nil {
				return oops.Wrapf(err, "read --hold")
			}
			return runScenario(cmd, args[0], hold)
		},
	}

	cmd.Flags().String("metrics-addr", "", "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().Bool("hold", false, "keep serving metrics after the actions finish until interrupted")
	return cmd
}

func runScenario(cmd *cobra.Command, path string, hold bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := startSession(cmd)
	if err != nil {
		return err
	}

	var (
		ready  atomic.Bool
		server *observability.Server
		opts   []board.Option
		xopts  = []script.Option{script.WithLogger(s.logger)}
	)
	if s.cfg.Metrics.Addr != "" {
		server = observability.NewServer(s.cfg.Metrics.Addr, ready.Load)
		opts = append(opts, board.WithObserver(server.Metrics()))
		xopts = append(xopts, script.WithRecorder(server.Metrics()))
	}

	if err := s.load(path, opts...); err != nil {
		return err
	}
	if err := s.requireActor(); err != nil {
		return err
	}
	stmts, err := script.Parse(s.world.Actions)
	if err != nil {
		return err
	}

	var errCh <-chan error
	if server != nil {
		errCh, err = server.Start()
		if err != nil {
			return err
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Stop(stopCtx); err != nil {
				s.logger.Warn("failed to stop metrics server", "error", err)
			}
		}()
	}
	ready.Store(true)

	x := script.NewExecutor(s.world.Board, s.world.Actor, xopts...)
	outcomes, runErr := x.Run(ctx, stmts)
	enc := json.NewEncoder(cmd.OutOrStdout())
	failed := 0
	for _, o := range outcomes {
		if !o.Result.Outcome().Success {
			failed++
		}
		if err := enc.Encode(o); err != nil {
			return oops.Wrapf(err, "write outcome")
		}
	}
	if runErr != nil {
		return runErr
	}
	s.logger.Info("scenario finished",
		"scenario", s.file.Name, "actions", len(outcomes), "failed", failed)

	if !hold || server == nil {
		return nil
	}
	s.logger.Info("holding for metrics scrapes", "addr", server.Addr())
	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if err != nil {
			return oops.Wrapf(err, "metrics server")
		}
		return nil
	}
}
