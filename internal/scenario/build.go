// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package scenario

import (
	"github.com/samber/oops"

	"github.com/holomush/gridcore/internal/board"
	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/person"
)

// Defaults fill in person attributes a scenario leaves out.
type Defaults struct {
	Strength          int
	InventoryCapacity int
}

// World is a scenario turned into live entities on a board.
type World struct {
	Name    string
	Board   *board.Board
	Actor   *person.Person // nil when the scenario names no actor
	Persons map[string]*person.Person
	Actions []string
}

// Build creates the board and every entity the scenario describes.
func Build(f *File, defaults Defaults, opts ...board.Option) (*World, error) {
	b, err := board.New(f.Board.Width, f.Board.Height, opts...)
	if err != nil {
		return nil, oops.Wrapf(err, "create board")
	}
	w := &World{
		Name:    f.Name,
		Board:   b,
		Persons: map[string]*person.Person{},
		Actions: f.Actions,
	}

	for i := range f.Entities {
		s := &f.Entities[i]
		e, err := w.build(s, defaults)
		if err != nil {
			return nil, err
		}
		if err := b.Add(e, *s.Position); err != nil {
			return nil, oops.With("entity", s.Name).Wrapf(err, "place entity")
		}
	}
	if f.Actor != "" {
		w.Actor = w.Persons[f.Actor]
		if w.Actor == nil {
			return nil, oops.Code(CodeUnknownActor).
				With("actor", f.Actor).
				Wrapf(ErrUnknownActor, "actor %q", f.Actor)
		}
	}
	return w, nil
}

func (w *World) build(s *EntitySpec, defaults Defaults) (entity.Entity, error) {
	var e entity.Entity
	switch s.kind() {
	case KindEntity:
		base := entity.NewBase(s.ID, s.Name)
		e = &base
	case KindObject:
		o := entity.NewObject(s.ID, s.Name)
		applyObject(o, s)
		e = o
	case KindContainer:
		c := entity.NewContainer(s.ID, s.Name, s.Capacity)
		applyObject(&c.Object, s)
		if err := w.fill(c, s.Contents, defaults); err != nil {
			return nil, err
		}
		if s.Open != nil && !*s.Open {
			c.Close()
		}
		e = c
	case KindPerson:
		strength := defaults.Strength
		if s.Strength != nil {
			strength = *s.Strength
		}
		capacity := s.InventoryCapacity
		if capacity <= 0 {
			capacity = defaults.InventoryCapacity
		}
		p := person.New(s.ID, s.Name, strength, capacity)
		if err := w.fill(p.Inventory(), s.Inventory, defaults); err != nil {
			return nil, err
		}
		for i := range s.Worn {
			if err := w.fill(p.Inventory(), s.Worn[i:i+1], defaults); err != nil {
				return nil, err
			}
			id := p.Inventory().Contents()[p.Inventory().Len()-1].Core().ID
			if res := p.Wear(id); !res.Success {
				return nil, oops.Code(CodeInvalidScenario).
					With("person", p.ID).
					With("item", id).
					Wrapf(ErrInvalidScenario, "%s", res.Message)
			}
		}
		w.Persons[p.ID] = p
		e = p
	default:
		return nil, invalid("unknown kind %q", s.Kind)
	}

	c := e.Core()
	c.Description = s.Description
	if len(s.Properties) > 0 {
		c.Properties = entity.Properties(s.Properties).Clone()
	}
	if err := entity.Validate(e); err != nil {
		return nil, oops.Code(CodeInvalidScenario).
			With("entity", c.ID).
			Wrap(err)
	}
	return e, nil
}

func (w *World) fill(c *entity.Container, specs []EntitySpec, defaults Defaults) error {
	for i := range specs {
		child, err := w.build(&specs[i], defaults)
		if err != nil {
			return err
		}
		phys, ok := entity.AsPhysical(child)
		if !ok {
			return invalid("%s cannot be carried", entity.Name(child))
		}
		if err := c.Add(phys); err != nil {
			return oops.With("container", c.ID).Wrapf(err, "fill container")
		}
	}
	return nil
}

func applyObject(o *entity.Object, s *EntitySpec) {
	o.Movable = s.Movable
	o.Jumpable = s.Jumpable
	o.UsableAlone = s.UsableAlone
	o.Collectable = s.Collectable
	o.Wearable = s.Wearable
	o.Weight = s.Weight
	o.UsableWith = entity.NewSet(s.UsableWith...)
	o.PossibleActions = entity.NewSet(s.PossibleActions...)
}

// Export returns the flat field maps of every registered entity, sorted
// by id.
func (w *World) Export() []map[string]any {
	return entity.FieldsList(w.Board.Entities())
}
