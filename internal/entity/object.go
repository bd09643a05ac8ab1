// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package entity

// Object is a physical thing that can sit on the grid or inside a container.
type Object struct {
	Base

	Movable     bool // can be pushed or pulled
	Jumpable    bool // can be jumped over
	UsableAlone bool
	Collectable bool
	Wearable    bool
	Weight      int

	UsableWith      Set // ids of entities this object can be used with
	PossibleActions Set // free-form action tags for presentation layers
}

// NewObject creates an object with a generated id when id is empty.
func NewObject(id, name string) *Object {
	return &Object{
		Base:            NewBase(id, name),
		UsableWith:      Set{},
		PossibleActions: Set{},
	}
}

// Kind implements Entity.
func (o *Object) Kind() Kind { return KindObject }

// Physical implements Physical.
func (o *Object) Physical() *Object { return o }

// Blocks reports whether the object stops entry to its cell.
// Immovable objects block; movable ones do not.
func (o *Object) Blocks() bool {
	return !o.Movable
}

// CanUseWith reports whether the object declares a usable-with relation to id.
func (o *Object) CanUseWith(id string) bool {
	return o.UsableWith.Has(id)
}
