// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/pkg/errutil"
)

const (
	yardScenario  = "testdata/yard.yaml"
	emptyScenario = "testdata/empty.yaml"
	testConfig    = "testdata/gridcore.yaml"
)

// execute runs the root command with args and returns stdout, stderr and
// the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"run", "path", "validate", "export", "look"} {
		assert.Contains(t, out, sub, "Help missing %q command", sub)
	}
}

func TestRootCommand_VersionFlag(t *testing.T) {
	cmd := NewRootCmd()
	cmd.Version = "test-version"
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "test-version")
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"config", "log-format", "log-level", "strength", "inventory-capacity"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing persistent flag %q", name)
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    entity.Position
		wantErr bool
	}{
		{name: "plain", input: "3,4", want: entity.Pos(3, 4)},
		{name: "spaces", input: " 1 , 2 ", want: entity.Pos(1, 2)},
		{name: "negative", input: "-1,0", want: entity.Pos(-1, 0)},
		{name: "missing comma", input: "3 4", wantErr: true},
		{name: "not numbers", input: "a,b", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCell(tt.input)
			if tt.wantErr {
				errutil.AssertErrorCode(t, err, "INVALID_CELL")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenSession_AppliesConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var s *session
	cmd := NewRootCmd()
	inspect := &cobra.Command{
		Use: "inspect",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			s, err = openSession(cmd, yardScenario)
			return err
		},
	}
	cmd.AddCommand(inspect)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"inspect", "--config", testConfig, "--strength", "9"})

	require.NoError(t, cmd.Execute())
	require.NotNil(t, s)
	assert.Equal(t, "json", s.cfg.Log.Format)
	assert.Equal(t, 1, s.cfg.Look.Radius)
	assert.Equal(t, 9, s.cfg.Person.Strength)
	assert.Equal(t, "yard", s.world.Name)
	assert.Equal(t, 9, s.world.Actor.Strength)
}

func TestOpenSession_MissingScenario(t *testing.T) {
	_, _, err := execute(t, "validate", "testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestOpenSession_FallsBackToXDGConfig(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "gridcore"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(base, "gridcore", "gridcore.yaml"),
		[]byte("look:\n  radius: 0\n"), 0o600))

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"look", yardScenario})
	t.Setenv("XDG_CONFIG_HOME", base)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"radius": 0`)
}
