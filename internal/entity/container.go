// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package entity

import (
	"slices"

	"github.com/samber/oops"
)

// Container is a physical object that holds other physical objects.
// Contents keep insertion order and never carry a grid position.
type Container struct {
	Object

	Capacity int
	IsOpen   bool

	contents []Physical
}

// NewContainer creates an open container with the given capacity.
func NewContainer(id, name string, capacity int) *Container {
	return &Container{
		Object:   *NewObject(id, name),
		Capacity: capacity,
		IsOpen:   true,
	}
}

// Kind implements Entity.
func (c *Container) Kind() Kind { return KindContainer }

// Storage implements Holder.
func (c *Container) Storage() *Container { return c }

// Open opens the container.
func (c *Container) Open() { c.IsOpen = true }

// Close closes the container.
func (c *Container) Close() { c.IsOpen = false }

// Len returns the number of held items.
func (c *Container) Len() int { return len(c.contents) }

// IsFull reports whether no more items fit.
func (c *Container) IsFull() bool { return len(c.contents) >= c.Capacity }

// Contents returns a copy of the held items in insertion order.
func (c *Container) Contents() []Physical {
	return slices.Clone(c.contents)
}

// Find returns the held item with the given id. Finding does not require
// the container to be open.
func (c *Container) Find(id string) (Physical, bool) {
	if i := c.Index(id); i >= 0 {
		return c.contents[i], true
	}
	return nil, false
}

// Index returns the position of id in the contents, or -1.
func (c *Container) Index(id string) int {
	return slices.IndexFunc(c.contents, func(p Physical) bool {
		return p.Core().ID == id
	})
}

// Add appends item to the contents.
func (c *Container) Add(item Physical) error {
	return c.Insert(len(c.contents), item)
}

// Insert places item at index i (clamped to the valid range). It is the
// restore path for a Remove that must be undone without reordering.
func (c *Container) Insert(i int, item Physical) error {
	if err := c.checkInsert(item); err != nil {
		return err
	}
	i = max(0, min(i, len(c.contents)))
	c.contents = slices.Insert(c.contents, i, item)
	return nil
}

// Remove takes the item with the given id out of the container.
func (c *Container) Remove(id string) (Physical, error) {
	if !c.IsOpen {
		return nil, oops.Code(CodeContainerClosed).
			With("container", c.ID).
			With("item", id).
			Wrap(ErrContainerClosed)
	}
	i := c.Index(id)
	if i < 0 {
		return nil, oops.Code(CodeNotFound).
			With("container", c.ID).
			With("item", id).
			Wrap(ErrItemNotFound)
	}
	item := c.contents[i]
	c.contents = slices.Delete(c.contents, i, i+1)
	return item, nil
}

func (c *Container) checkInsert(item Physical) error {
	id := item.Core().ID
	switch {
	case !c.IsOpen:
		return oops.Code(CodeContainerClosed).
			With("container", c.ID).
			With("item", id).
			Wrap(ErrContainerClosed)
	case c.IsFull():
		return oops.Code(CodeContainerFull).
			With("container", c.ID).
			With("item", id).
			With("capacity", c.Capacity).
			Wrap(ErrContainerFull)
	case item.Core() == &c.Base:
		return oops.Code(CodeSelfContainment).
			With("container", c.ID).
			Wrap(ErrSelfContainment)
	case item.Core().Placed():
		return oops.Code(CodeItemPlaced).
			With("container", c.ID).
			With("item", id).
			Wrap(ErrItemPlaced)
	case c.Index(id) >= 0:
		return oops.Code(CodeDuplicateItem).
			With("container", c.ID).
			With("item", id).
			Wrap(ErrDuplicateItem)
	}
	return nil
}
