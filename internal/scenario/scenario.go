// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package scenario loads board scenarios from YAML: the board size, the
// entities on it, the acting person, and a list of script actions.
package scenario

import (
	"github.com/knadh/koanf/providers/file"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"

	"github.com/holomush/gridcore/internal/entity"
)

// Entity kinds accepted in a scenario.
const (
	KindEntity    = "entity"
	KindObject    = "object"
	KindContainer = "container"
	KindPerson    = "person"
)

// File is a parsed scenario document.
type File struct {
	FormatVersion string       `koanf:"format_version" json:"format_version" yaml:"format_version" jsonschema:"pattern=^[0-9]+\\.[0-9]+(\\.[0-9]+)?$"`
	Name          string       `koanf:"name" json:"name,omitempty" yaml:"name,omitempty"`
	Description   string       `koanf:"description" json:"description,omitempty" yaml:"description,omitempty"`
	Board         BoardSpec    `koanf:"board" json:"board" yaml:"board"`
	Entities      []EntitySpec `koanf:"entities" json:"entities,omitempty" yaml:"entities,omitempty"`
	Actor         string       `koanf:"actor" json:"actor,omitempty" yaml:"actor,omitempty"`
	Actions       []string     `koanf:"actions" json:"actions,omitempty" yaml:"actions,omitempty"`
}

// BoardSpec sizes the board.
type BoardSpec struct {
	Width  int `koanf:"width" json:"width" yaml:"width" jsonschema:"minimum=1"`
	Height int `koanf:"height" json:"height" yaml:"height" jsonschema:"minimum=1"`
}

// EntitySpec describes one entity. Top-level entities need a position;
// entities nested in contents or inventory must not have one.
type EntitySpec struct {
	ID          string           `koanf:"id" json:"id,omitempty" yaml:"id,omitempty"`
	Name        string           `koanf:"name" json:"name" yaml:"name" jsonschema:"minLength=1,maxLength=100"`
	Description string           `koanf:"description" json:"description,omitempty" yaml:"description,omitempty"`
	Kind        string           `koanf:"kind" json:"kind,omitempty" yaml:"kind,omitempty" jsonschema:"enum=entity,enum=object,enum=container,enum=person,default=object"`
	Position    *entity.Position `koanf:"position" json:"position,omitempty" yaml:"position,omitempty"`
	Properties  map[string]any   `koanf:"properties" json:"properties,omitempty" yaml:"properties,omitempty"`

	Movable         bool     `koanf:"is_movable" json:"is_movable,omitempty" yaml:"is_movable,omitempty"`
	Jumpable        bool     `koanf:"is_jumpable" json:"is_jumpable,omitempty" yaml:"is_jumpable,omitempty"`
	UsableAlone     bool     `koanf:"is_usable_alone" json:"is_usable_alone,omitempty" yaml:"is_usable_alone,omitempty"`
	Collectable     bool     `koanf:"is_collectable" json:"is_collectable,omitempty" yaml:"is_collectable,omitempty"`
	Wearable        bool     `koanf:"is_wearable" json:"is_wearable,omitempty" yaml:"is_wearable,omitempty"`
	Weight          int      `koanf:"weight" json:"weight,omitempty" yaml:"weight,omitempty" jsonschema:"minimum=0"`
	UsableWith      []string `koanf:"usable_with" json:"usable_with,omitempty" yaml:"usable_with,omitempty"`
	PossibleActions []string `koanf:"possible_actions" json:"possible_actions,omitempty" yaml:"possible_actions,omitempty"`

	Capacity int          `koanf:"capacity" json:"capacity,omitempty" yaml:"capacity,omitempty" jsonschema:"minimum=0"`
	Open     *bool        `koanf:"is_open" json:"is_open,omitempty" yaml:"is_open,omitempty"`
	Contents []EntitySpec `koanf:"contents" json:"contents,omitempty" yaml:"contents,omitempty"`

	Strength          *int         `koanf:"strength" json:"strength,omitempty" yaml:"strength,omitempty" jsonschema:"minimum=0"`
	InventoryCapacity int          `koanf:"inventory_capacity" json:"inventory_capacity,omitempty" yaml:"inventory_capacity,omitempty" jsonschema:"minimum=0"`
	Inventory         []EntitySpec `koanf:"inventory" json:"inventory,omitempty" yaml:"inventory,omitempty"`
	Worn              []EntitySpec `koanf:"worn" json:"worn,omitempty" yaml:"worn,omitempty"`
}

// kind returns the entity kind, defaulting to object.
func (s *EntitySpec) kind() string {
	if s.Kind == "" {
		return KindObject
	}
	return s.Kind
}

// bytesProvider feeds already-read scenario bytes to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) { return b, nil }

func (b bytesProvider) Read() (map[string]any, error) {
	return nil, oops.Errorf("bytesProvider does not support Read")
}

// Load reads, schema-checks, and validates a scenario file.
func Load(path string) (*File, error) {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, oops.Code(CodeReadFailed).With("path", path).Wrap(err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, oops.With("path", path).Wrap(err)
	}
	return f, nil
}

// Parse schema-checks, decodes, and validates scenario YAML.
func Parse(data []byte) (*File, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(bytesProvider(data), kyaml.Parser()); err != nil {
		return nil, oops.Code(CodeInvalidScenario).Wrapf(err, "decode scenario")
	}
	var f File
	if err := k.UnmarshalWithConf("", &f, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, oops.Code(CodeInvalidScenario).Wrapf(err, "decode scenario")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}
