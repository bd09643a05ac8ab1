// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/gridcore/internal/board"
	"github.com/holomush/gridcore/internal/config"
	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/logging"
	"github.com/holomush/gridcore/internal/scenario"
	"github.com/holomush/gridcore/internal/xdg"
)

// NewRootCmd creates the root command for the gridcore CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridcore",
		Short: "Tile-grid simulation core",
		Long: `gridcore loads board scenarios and drives a person through them:
walking, jumping, pushing and pulling objects, and handling containers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "config file path (default $XDG_CONFIG_HOME/gridcore/gridcore.yaml if present)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewPathCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewLookCmd())
	return cmd
}

// session is everything a subcommand needs after startup.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	file   *scenario.File
	world  *scenario.World
}

// startSession loads configuration and sets up logging.
func startSession(cmd *cobra.Command) (*session, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, oops.Wrapf(err, "read --config")
	}
	if configFile == "" {
		if configFile, err = xdg.ExistingConfigFile(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger, err := logging.SetDefault(logging.Options{
		Service: "gridcore",
		Version: version,
		Format:  cfg.Log.Format,
		Level:   cfg.Log.Level,
		Writer:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, logger: logger}, nil
}

// load builds the scenario at path into the session.
func (s *session) load(path string, opts ...board.Option) error {
	f, err := scenario.Load(path)
	if err != nil {
		return err
	}
	opts = append([]board.Option{board.WithLogger(s.logger)}, opts...)
	w, err := scenario.Build(f, scenario.Defaults{
		Strength:          s.cfg.Person.Strength,
		InventoryCapacity: s.cfg.Person.InventoryCapacity,
	}, opts...)
	if err != nil {
		return err
	}
	s.logger.Debug("scenario loaded", "scenario", path, "entities", w.Board.Len(), "actions", len(f.Actions))
	s.file, s.world = f, w
	return nil
}

// openSession starts a session and builds the scenario at path.
func openSession(cmd *cobra.Command, path string) (*session, error) {
	s, err := startSession(cmd)
	if err != nil {
		return nil, err
	}
	if err := s.load(path); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) requireActor() error {
	if s.world.Actor == nil {
		return oops.Code("NO_ACTOR").Errorf("scenario %q names no actor", s.file.Name)
	}
	return nil
}

// parseCell parses "X,Y".
func parseCell(s string) (entity.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return entity.Position{}, oops.Code("INVALID_CELL").Errorf("cell must be X,Y, got %q", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return entity.Position{}, oops.Code("INVALID_CELL").Errorf("cell must be two integers, got %q", s)
	}
	return entity.Pos(x, y), nil
}
