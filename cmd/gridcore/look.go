// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/json"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/gridcore/internal/board"
	"github.com/holomush/gridcore/internal/config"
)

// NewLookCmd creates the look subcommand.
func NewLookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "look SCENARIO [PATTERN]",
		Short: "List what the actor sees around it",
		Long: `Build a scenario and list the entities within --radius cells of the actor.
An optional glob PATTERN keeps only entities whose name matches.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			if err := s.requireActor(); err != nil {
				return err
			}

			res := s.world.Actor.Look(s.world.Board, s.cfg.Look.Radius)
			if res.Success && len(args) == 2 {
				match, err := board.NameMatcher(args[1])
				if err != nil {
					return err
				}
				res = res.Filter(match)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return oops.Wrapf(err, "write look result")
			}
			if !res.Success {
				return oops.Code(string(res.Code)).Errorf("%s", res.Message)
			}
			return nil
		},
	}

	cmd.Flags().Int("radius", config.DefaultLookRadius, "how many cells around the actor to look")
	return cmd
}
