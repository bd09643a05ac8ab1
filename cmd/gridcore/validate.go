// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/script"
)

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate SCENARIO",
		Short: "Check a scenario without running it",
		Long: `Validate a scenario against the schema and the placement rules, build
its board, and parse its actions. Nothing is executed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			stmts, err := script.Parse(s.world.Actions)
			if err != nil {
				return err
			}

			actor := "none"
			if s.world.Actor != nil {
				actor = entity.ID(s.world.Actor)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scenario %q is valid (format %s)\n", s.file.Name, s.file.FormatVersion)
			fmt.Fprintf(out, "  board:    %dx%d\n", s.world.Board.Width(), s.world.Board.Height())
			fmt.Fprintf(out, "  entities: %d\n", s.world.Board.Len())
			fmt.Fprintf(out, "  actor:    %s\n", actor)
			fmt.Fprintf(out, "  actions:  %d\n", len(stmts))
			return nil
		},
	}
}
