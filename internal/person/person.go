// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package person implements the actor movement protocol: the verbs a
// Person uses to walk, jump, push, pull, and handle items on a board.
//
// Every verb is a transaction. Preconditions are checked before any
// registry mutation; if a later step fails, earlier steps are undone before
// the verb returns, so the registry is never left half-updated. Game-rule
// failures are reported in the returned result, never as errors or panics.
// A nil registry is a programming error and panics.
package person

import (
	"slices"

	"github.com/holomush/gridcore/internal/entity"
)

// Registry is the board surface the verbs operate on.
type Registry interface {
	IsValidPosition(p entity.Position) bool
	CanMoveTo(p entity.Position) bool
	JumpableAt(p entity.Position) bool
	Blocker(p entity.Position) (entity.Physical, bool)
	EntitiesAt(p entity.Position) []entity.Entity
	ObjectAt(p entity.Position) (entity.Physical, bool)
	Entity(id string) (entity.Entity, bool)
	Within(center entity.Position, radius int) []entity.Entity
	Add(e entity.Entity, p entity.Position) error
	Remove(e entity.Entity) bool
	Move(e entity.Entity, p entity.Position) error
	Slot(e entity.Entity) int
	Insert(e entity.Entity, p entity.Position, i int) error
}

// DefaultInventoryCapacity is used when New is given a non-positive capacity.
const DefaultInventoryCapacity = 10

// Person is an actor on the board.
type Person struct {
	entity.Base

	Strength int // heaviest weight the person can push, pull, or lift

	inventory *entity.Container
	worn      []entity.Physical
}

// InventoryID returns the id of the inventory container owned by the
// person with the given id.
func InventoryID(personID string) string { return personID + "-inventory" }

// New creates a person with an empty, open inventory. An empty id is
// generated.
func New(id, name string, strength, inventoryCapacity int) *Person {
	if inventoryCapacity <= 0 {
		inventoryCapacity = DefaultInventoryCapacity
	}
	p := &Person{
		Base:     entity.NewBase(id, name),
		Strength: strength,
	}
	p.inventory = entity.NewContainer(InventoryID(p.ID), name+"'s inventory", inventoryCapacity)
	return p
}

// Kind implements entity.Entity.
func (p *Person) Kind() entity.Kind { return entity.KindPerson }

// Inventory returns the person's own container.
func (p *Person) Inventory() *entity.Container { return p.inventory }

// Worn returns a copy of the worn items.
func (p *Person) Worn() []entity.Physical { return slices.Clone(p.worn) }

// IsWearing reports whether an item with the given id is worn.
func (p *Person) IsWearing(id string) bool {
	return p.wornIndex(id) >= 0
}

// ExportFields implements entity.FieldExporter.
func (p *Person) ExportFields(fields map[string]any) {
	fields["strength"] = p.Strength
	fields["inventory"] = entity.Fields(p.inventory)
	fields["worn_items"] = entity.FieldsList(p.worn)
}

func (p *Person) wornIndex(id string) int {
	return slices.IndexFunc(p.worn, func(w entity.Physical) bool {
		return w.Core().ID == id
	})
}

func mustRegistry(r Registry) {
	if r == nil {
		panic("person: nil registry")
	}
}

// otherActorAt returns a non-physical entity other than p at pos. Persons
// never share a cell.
func (p *Person) otherActorAt(r Registry, pos entity.Position) (entity.Entity, bool) {
	for _, e := range r.EntitiesAt(pos) {
		if e == entity.Entity(p) {
			continue
		}
		if _, physical := e.(entity.Physical); !physical {
			return e, true
		}
	}
	return nil, false
}

// enterable checks that p may step into pos, returning a failure result
// when it may not.
func (p *Person) enterable(r Registry, pos entity.Position) (Result, bool) {
	if !r.CanMoveTo(pos) {
		if blocker, ok := r.Blocker(pos); ok {
			return fail(CodeBlocked, "%s is blocked by %s", pos, entity.Name(blocker)), false
		}
		return fail(CodeBlocked, "%s is blocked", pos), false
	}
	if other, ok := p.otherActorAt(r, pos); ok {
		return fail(CodeBlocked, "%s is blocked by %s", pos, entity.Name(other)), false
	}
	return Result{}, true
}

// occupied reports the first entity at pos other than p.
func (p *Person) occupied(r Registry, pos entity.Position) (entity.Entity, bool) {
	for _, e := range r.EntitiesAt(pos) {
		if e != entity.Entity(p) {
			return e, true
		}
	}
	return nil, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
