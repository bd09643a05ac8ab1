// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/json"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/pathfind"
)

// pathReport is the JSON printed by the path subcommand.
type pathReport struct {
	From  entity.Position   `json:"from"`
	To    entity.Position   `json:"to"`
	Found bool              `json:"found"`
	Path  []entity.Position `json:"path"`
	Steps []pathfind.Step   `json:"steps"`
	Cost  float64           `json:"cost"`
}

// NewPathCmd creates the path subcommand.
func NewPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path SCENARIO",
		Short: "Find the cheapest route between two cells",
		Long: `Build a scenario's board and print the cheapest walking-and-jumping route
between two cells. Nothing on the board moves.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromFlag, err := cmd.Flags().GetString("from")
			if err != nil {
				return oops.Wrapf(err, "read --from")
			}
			toFlag, err := cmd.Flags().GetString("to")
			if err != nil {
				return oops.Wrapf(err, "read --to")
			}

			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}

			to, err := parseCell(toFlag)
			if err != nil {
				return err
			}
			var from entity.Position
			if fromFlag != "" {
				if from, err = parseCell(fromFlag); err != nil {
					return err
				}
			} else {
				if err := s.requireActor(); err != nil {
					return err
				}
				p, ok := s.world.Actor.Position()
				if !ok {
					return oops.Code("NOT_PLACED").Errorf("actor %q is not on the board", entity.ID(s.world.Actor))
				}
				from = p
			}

			report := pathReport{From: from, To: to}
			report.Path = pathfind.FindPath(s.world.Board, from, to)
			if report.Path != nil {
				report.Found = true
				report.Steps = pathfind.Steps(report.Path)
				report.Cost = pathfind.Cost(report.Path)
			}
			s.logger.Debug("path computed", "from", from, "to", to, "found", report.Found, "cost", report.Cost)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return oops.Wrapf(err, "write path")
			}
			return nil
		},
	}

	cmd.Flags().String("from", "", "start cell as X,Y (default: the actor's cell)")
	cmd.Flags().String("to", "", "goal cell as X,Y")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
