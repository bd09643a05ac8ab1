// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/json"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/holomush/gridcore/internal/entity"
)

// Export formats.
const (
	exportJSON = "json"
	exportYAML = "yaml"
)

// worldExport is the document written by the export subcommand.
type worldExport struct {
	FormatVersion string           `json:"format_version" yaml:"format_version"`
	Name          string           `json:"name" yaml:"name"`
	Board         boardExport      `json:"board" yaml:"board"`
	Entities      []map[string]any `json:"entities" yaml:"entities"`
}

type boardExport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// NewExportCmd creates the export subcommand.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export SCENARIO [PATTERN]",
		Short: "Print the built board's entities as flat field maps",
		Long: `Print the built board's entities as flat field maps, ordered by id.
PATTERN is a case-insensitive glob over entity names and ids.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return oops.Wrapf(err, "read --format")
			}
			if format != exportJSON && format != exportYAML {
				return oops.Code("INVALID_FORMAT").Errorf("format must be %q or %q, got %q", exportJSON, exportYAML, format)
			}

			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			var pattern string
			if len(args) == 2 {
				pattern = args[1]
			}
			found, err := s.world.Board.FindByName(pattern)
			if err != nil {
				return err
			}
			doc := worldExport{
				FormatVersion: s.file.FormatVersion,
				Name:          s.world.Name,
				Board:         boardExport{Width: s.world.Board.Width(), Height: s.world.Board.Height()},
				Entities:      entity.FieldsList(found),
			}

			out := cmd.OutOrStdout()
			if format == exportYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return oops.Wrapf(err, "write yaml export")
				}
				return oops.Wrapf(enc.Close(), "flush yaml export")
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(doc); err != nil {
				return oops.Wrapf(err, "write json export")
			}
			return nil
		},
	}

	cmd.Flags().String("format", exportJSON, "output format (json or yaml)")
	return cmd
}
