// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package scenario

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/oops"

	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/person"
)

// SupportedVersions is the format_version range this package reads.
const SupportedVersions = "^1.0"

var supported = semver.MustParse("1.0.0")

// CurrentVersion is the format_version written by exporters.
func CurrentVersion() string { return supported.String() }

// Validate checks the constraints the schema cannot express: the format
// version range, unique ids, positions inside the board, nesting rules,
// and the actor reference. Persons never share a cell with another person
// or with an immovable object.
func (f *File) Validate() error {
	if err := checkVersion(f.FormatVersion); err != nil {
		return err
	}
	if f.Board.Width <= 0 || f.Board.Height <= 0 {
		return invalid("board must be at least 1x1, got %dx%d", f.Board.Width, f.Board.Height)
	}

	seen := map[string]struct{}{}
	for i := range f.Entities {
		s := &f.Entities[i]
		field := fmt.Sprintf("entities[%d]", i)
		if s.Position == nil {
			return invalid("%s (%s) needs a position", field, s.Name)
		}
		if p := *s.Position; p.X < 0 || p.Y < 0 || p.X >= f.Board.Width || p.Y >= f.Board.Height {
			return invalid("%s (%s) at %s is outside the %dx%d board",
				field, s.Name, p, f.Board.Width, f.Board.Height)
		}
		if err := s.validate(field, seen); err != nil {
			return err
		}
	}
	if err := f.checkOccupancy(); err != nil {
		return err
	}

	if f.Actor == "" {
		if len(f.Actions) > 0 {
			return oops.Code(CodeUnknownActor).
				Wrapf(ErrUnknownActor, "actions need an actor")
		}
		return nil
	}
	for _, s := range f.Entities {
		if s.ID == f.Actor && s.kind() == KindPerson {
			return nil
		}
	}
	return oops.Code(CodeUnknownActor).
		With("actor", f.Actor).
		Wrapf(ErrUnknownActor, "actor %q", f.Actor)
}

// checkOccupancy rejects top-level persons placed on a cell that already
// holds another person or an immovable object.
func (f *File) checkOccupancy() error {
	persons := map[entity.Position]int{}
	blockers := map[entity.Position]int{}
	for i := range f.Entities {
		s := &f.Entities[i]
		p := *s.Position
		switch {
		case s.kind() == KindPerson:
			if j, ok := persons[p]; ok {
				return invalid("entities[%d] (%s) and entities[%d] (%s) are both persons at %s",
					j, f.Entities[j].Name, i, s.Name, p)
			}
			persons[p] = i
		case s.blocks():
			if _, ok := blockers[p]; !ok {
				blockers[p] = i
			}
		}
	}
	for i := range f.Entities {
		s := &f.Entities[i]
		if s.kind() != KindPerson {
			continue
		}
		if j, ok := blockers[*s.Position]; ok {
			return invalid("entities[%d] (%s) stands on immovable entities[%d] (%s) at %s",
				i, s.Name, j, f.Entities[j].Name, *s.Position)
		}
	}
	return nil
}

// blocks reports whether the built entity would stop entry to its cell.
func (s *EntitySpec) blocks() bool {
	switch s.kind() {
	case KindObject, KindContainer:
		return !s.Movable
	}
	return false
}

func (s *EntitySpec) validate(field string, seen map[string]struct{}) error {
	if err := entity.ValidateName(s.Name); err != nil {
		return invalid("%s: %v", field, err)
	}
	if s.ID != "" {
		if err := entity.ValidateID(s.ID); err != nil {
			return invalid("%s: %v", field, err)
		}
		if err := reserveID(seen, s.ID, field); err != nil {
			return err
		}
		if s.kind() == KindPerson {
			if err := reserveID(seen, person.InventoryID(s.ID), field+" inventory"); err != nil {
				return err
			}
		}
	}

	kind := s.kind()
	switch kind {
	case KindEntity, KindObject, KindContainer, KindPerson:
	default:
		return invalid("%s: unknown kind %q", field, s.Kind)
	}
	if len(s.Contents) > 0 && kind != KindContainer {
		return invalid("%s: only containers have contents", field)
	}
	if (len(s.Inventory) > 0 || len(s.Worn) > 0) && kind != KindPerson {
		return invalid("%s: only persons carry an inventory", field)
	}
	if kind == KindContainer && len(s.Contents) > s.Capacity {
		return invalid("%s: %d contents exceed capacity %d", field, len(s.Contents), s.Capacity)
	}

	for _, nested := range []struct {
		name  string
		specs []EntitySpec
	}{{"contents", s.Contents}, {"inventory", s.Inventory}, {"worn", s.Worn}} {
		for i := range nested.specs {
			child := &nested.specs[i]
			childField := fmt.Sprintf("%s.%s[%d]", field, nested.name, i)
			if child.Position != nil {
				return invalid("%s cannot have a position", childField)
			}
			switch child.kind() {
			case KindObject, KindContainer:
			default:
				return invalid("%s: a %s cannot be carried", childField, child.kind())
			}
			if err := child.validate(childField, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

func reserveID(seen map[string]struct{}, id, field string) error {
	if _, dup := seen[id]; dup {
		return oops.Code(CodeDuplicateID).
			With("id", id).
			Wrapf(ErrDuplicateID, "%s", field)
	}
	seen[id] = struct{}{}
	return nil
}

func checkVersion(v string) error {
	if v == "" {
		return oops.Code(CodeUnsupportedVersion).
			Wrapf(ErrUnsupportedVersion, "format_version is required")
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return oops.Code(CodeUnsupportedVersion).
			With("format_version", v).
			Wrapf(ErrUnsupportedVersion, "%v", err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return oops.Wrapf(err, "parse supported versions")
	}
	if !c.Check(version) {
		return oops.Code(CodeUnsupportedVersion).
			With("format_version", v).
			With("supported", SupportedVersions).
			Wrapf(ErrUnsupportedVersion, "%s", v)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return oops.Code(CodeInvalidScenario).
		Wrapf(ErrInvalidScenario, format, args...)
}
