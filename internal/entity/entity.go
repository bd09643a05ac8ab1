// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package entity defines the value types that can be placed on the grid:
// a base identity record, physical objects, and containers.
package entity

// Kind identifies the concrete entity variant.
type Kind string

// Entity kinds.
const (
	KindEntity    Kind = "entity"
	KindObject    Kind = "object"
	KindContainer Kind = "container"
	KindPerson    Kind = "person"
)

// Entity is anything that can be registered on a board.
type Entity interface {
	// Core returns the shared identity record.
	Core() *Base
	// Kind reports the concrete variant.
	Kind() Kind
}

// Physical is an entity with physical-object flags.
type Physical interface {
	Entity
	Physical() *Object
}

// Holder is a physical entity that can hold other physical entities.
type Holder interface {
	Physical
	Storage() *Container
}

// Base is the identity and position record shared by every entity.
type Base struct {
	ID          string
	Name        string
	Description string
	Properties  Properties

	position *Position // nil when not placed on any grid
}

// NewBase creates a Base with a generated id when id is empty.
func NewBase(id, name string) Base {
	if id == "" {
		id = NewID()
	}
	return Base{ID: id, Name: name}
}

// Core implements Entity.
func (b *Base) Core() *Base { return b }

// Kind implements Entity.
func (b *Base) Kind() Kind { return KindEntity }

// Position returns the entity's grid position, if placed.
func (b *Base) Position() (Position, bool) {
	if b.position == nil {
		return Position{}, false
	}
	return *b.position, true
}

// Placed reports whether the entity has a grid position.
func (b *Base) Placed() bool {
	return b.position != nil
}

// Place records p as the entity's position.
// Only a board should call this; it keeps its indexes in step with the field.
func (b *Base) Place(p Position) {
	b.position = &p
}

// Unplace clears the entity's position.
func (b *Base) Unplace() {
	b.position = nil
}

// ID returns e's id, or "" for a nil entity.
func ID(e Entity) string {
	if e == nil {
		return ""
	}
	return e.Core().ID
}

// Name returns e's display name, falling back to its id.
func Name(e Entity) string {
	if e == nil {
		return ""
	}
	c := e.Core()
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// AsPhysical returns e's physical-object view when e has one.
func AsPhysical(e Entity) (Physical, bool) {
	p, ok := e.(Physical)
	return p, ok
}

// AsHolder returns e's container view when e is a container.
func AsHolder(e Entity) (Holder, bool) {
	h, ok := e.(Holder)
	return h, ok
}
