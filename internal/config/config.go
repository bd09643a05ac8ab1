// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads gridcore CLI settings. Values come from flag
// defaults, then an optional YAML file, then flags set on the command line.
package config

import (
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/holomush/gridcore/internal/logging"
)

// Config holds every setting the CLI reads.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Person  PersonConfig  `koanf:"person"`
	Look    LookConfig    `koanf:"look"`
}

// LogConfig configures logging.
type LogConfig struct {
	Format string `koanf:"format"`
	Level  string `koanf:"level"`
}

// MetricsConfig configures the observability server.
type MetricsConfig struct {
	Addr string `koanf:"addr"` // empty disables the server
}

// PersonConfig supplies defaults for persons a scenario leaves unset.
type PersonConfig struct {
	Strength          int `koanf:"strength"`
	InventoryCapacity int `koanf:"inventory_capacity"`
}

// LookConfig configures the look command.
type LookConfig struct {
	Radius int `koanf:"radius"`
}

// Default values.
const (
	DefaultLogFormat         = logging.FormatText
	DefaultLogLevel          = "info"
	DefaultStrength          = 5
	DefaultInventoryCapacity = 10
	DefaultLookRadius        = 2
)

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"log-format":         "log.format",
	"log-level":          "log.level",
	"metrics-addr":       "metrics.addr",
	"strength":           "person.strength",
	"inventory-capacity": "person.inventory_capacity",
	"radius":             "look.radius",
}

// RegisterFlags adds the global flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-format", DefaultLogFormat, "log format (json or text)")
	fs.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.Int("strength", DefaultStrength, "strength of persons that do not set one")
	fs.Int("inventory-capacity", DefaultInventoryCapacity, "inventory capacity of persons that do not set one")
}

// Load reads the config file at path, if any, then overlays fs. Flags not
// registered in flagKeys are ignored.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_READ_FAILED").With("path", path).Wrap(err)
		}
	}
	if fs != nil {
		provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(fs, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_FLAGS_FAILED").Wrap(err)
		}
	}

	cfg := Config{
		Log:    LogConfig{Format: DefaultLogFormat, Level: DefaultLogLevel},
		Person: PersonConfig{Strength: DefaultStrength, InventoryCapacity: DefaultInventoryCapacity},
		Look:   LookConfig{Radius: DefaultLookRadius},
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_DECODE_FAILED").Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the CLI cannot use.
func (c *Config) Validate() error {
	if c.Log.Format != logging.FormatJSON && c.Log.Format != logging.FormatText {
		return invalid("log.format must be 'json' or 'text', got %q", c.Log.Format)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level: %v", err)
	}
	if c.Person.Strength < 0 {
		return invalid("person.strength cannot be negative, got %d", c.Person.Strength)
	}
	if c.Person.InventoryCapacity < 1 {
		return invalid("person.inventory_capacity must be at least 1, got %d", c.Person.InventoryCapacity)
	}
	if c.Look.Radius < 0 {
		return invalid("look.radius cannot be negative, got %d", c.Look.Radius)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return oops.Code("CONFIG_INVALID").Errorf(format, args...)
}
