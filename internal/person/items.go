// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package person

import (
	"log/slog"
	"slices"

	"github.com/holomush/gridcore/internal/entity"
)

// ReachRange is the Manhattan distance within which a person can handle
// containers and items on the board.
const ReachRange = 1

// findContainer resolves a container in the inventory or within reach.
func (p *Person) findContainer(r Registry, id string) (*entity.Container, Result, bool) {
	if item, ok := p.inventory.Find(id); ok {
		if h, ok := entity.AsHolder(item); ok {
			return h.Storage(), Result{}, true
		}
		return nil, fail(CodeInvalid, "%s is not a container", entity.Name(item)), false
	}
	e, ok := r.Entity(id)
	if !ok {
		return nil, fail(CodeNotFound, "there is no container %q here", id), false
	}
	h, ok := entity.AsHolder(e)
	if !ok {
		return nil, fail(CodeInvalid, "%s is not a container", entity.Name(e)), false
	}
	if !p.inReach(e) {
		return nil, fail(CodeTooFar, "%s is out of reach", entity.Name(e)), false
	}
	return h.Storage(), Result{}, true
}

// inReach reports whether a placed entity is within ReachRange of p.
func (p *Person) inReach(e entity.Entity) bool {
	at, ok := e.Core().Position()
	if !ok {
		return false
	}
	from, ok := p.Position()
	return ok && from.Manhattan(at) <= ReachRange
}

// GetFromContainer moves an item from a reachable container into the
// person's inventory.
func (p *Person) GetFromContainer(r Registry, containerID, itemID string) TransferResult {
	mustRegistry(r)
	res := TransferResult{ItemID: itemID, ContainerID: containerID}
	if !p.Placed() {
		res.Result = fail(CodeNotPlaced, "%s is not on the board", entity.Name(p))
		return res
	}
	src, out, ok := p.findContainer(r, containerID)
	if !ok {
		res.Result = out
		return res
	}

	idx := src.Index(itemID)
	item, err := src.Remove(itemID)
	if err != nil {
		res.Result = failFrom(err, "cannot take %s from %s", itemID, entity.Name(src))
		return res
	}
	if err := p.inventory.Add(item); err != nil {
		p.reinsert(src, idx, item)
		res.Result = failFrom(err, "cannot carry %s", entity.Name(item))
		return res
	}
	res.Result = succeed("%s takes %s from %s", entity.Name(p), entity.Name(item), entity.Name(src))
	return res
}

// PutInContainer moves an inventory item into a reachable container.
func (p *Person) PutInContainer(r Registry, itemID, containerID string) TransferResult {
	mustRegistry(r)
	res := TransferResult{ItemID: itemID, ContainerID: containerID}
	if !p.Placed() {
		res.Result = fail(CodeNotPlaced, "%s is not on the board", entity.Name(p))
		return res
	}
	if _, ok := p.inventory.Find(itemID); !ok {
		res.Result = fail(CodeNotFound, "%s is not carrying %q", entity.Name(p), itemID)
		return res
	}
	if itemID == containerID {
		res.Result = fail(CodeInvalid, "cannot put %s inside itself", itemID)
		return res
	}
	dst, out, ok := p.findContainer(r, containerID)
	if !ok {
		res.Result = out
		return res
	}

	idx := p.inventory.Index(itemID)
	item, err := p.inventory.Remove(itemID)
	if err != nil {
		res.Result = failFrom(err, "cannot take out %s", itemID)
		return res
	}
	if err := dst.Add(item); err != nil {
		p.reinsert(p.inventory, idx, item)
		res.Result = failFrom(err, "cannot put %s in %s", entity.Name(item), entity.Name(dst))
		return res
	}
	res.Result = succeed("%s puts %s in %s", entity.Name(p), entity.Name(item), entity.Name(dst))
	return res
}

// reinsert returns an item to the container it was just taken from.
func (p *Person) reinsert(c *entity.Container, idx int, item entity.Physical) {
	if err := c.Insert(idx, item); err != nil {
		slog.Warn("rollback failed: could not return item to container",
			"person", p.ID, "container", c.ID, "item", entity.ID(item), "error", err)
	}
}

// PickUp lifts a collectable object within reach off the board into the
// inventory.
func (p *Person) PickUp(r Registry, at entity.Position) TransferResult {
	mustRegistry(r)
	res := TransferResult{Position: &at}
	from, ok := p.Position()
	if !ok {
		res.Result = fail(CodeNotPlaced, "%s is not on the board", entity.Name(p))
		return res
	}
	if !r.IsValidPosition(at) {
		res.Result = fail(CodeOutOfBounds, "%s is outside the board", at)
		return res
	}
	if from.Manhattan(at) > ReachRange {
		res.Result = fail(CodeTooFar, "%s is out of reach", at)
		return res
	}

	var obj entity.Physical
	sawObject := false
	for _, e := range r.EntitiesAt(at) {
		phys, isPhys := entity.AsPhysical(e)
		if !isPhys {
			continue
		}
		sawObject = true
		if phys.Physical().Collectable {
			obj = phys
			break
		}
	}
	switch {
	case obj == nil && sawObject:
		res.Result = fail(CodeNotCollectable, "nothing at %s can be picked up", at)
		return res
	case obj == nil:
		res.Result = fail(CodeNotFound, "there is nothing at %s", at)
		return res
	}
	res.ItemID = obj.Core().ID
	if w := obj.Physical().Weight; w > p.Strength {
		res.Result = fail(CodeTooHeavy, "%s is too heavy to lift (weight %d, strength %d)",
			entity.Name(obj), w, p.Strength)
		return res
	}

	slot := r.Slot(obj)
	r.Remove(obj)
	if err := p.inventory.Add(obj); err != nil {
		p.restore(r, obj, at, slot)
		res.Result = failFrom(err, "cannot carry %s", entity.Name(obj))
		return res
	}
	res.Result = succeed("%s picks up %s", entity.Name(p), entity.Name(obj))
	return res
}

// Drop places an inventory item on an enterable cell within reach.
func (p *Person) Drop(r Registry, itemID string, at entity.Position) TransferResult {
	mustRegistry(r)
	res := TransferResult{ItemID: itemID, Position: &at}
	from, ok := p.Position()
	if !ok {
		res.Result = fail(CodeNotPlaced, "%s is not on the board", entity.Name(p))
		return res
	}
	if !r.IsValidPosition(at) {
		res.Result = fail(CodeOutOfBounds, "%s is outside the board", at)
		return res
	}
	if from.Manhattan(at) > ReachRange {
		res.Result = fail(CodeTooFar, "%s is out of reach", at)
		return res
	}
	if blocked, ok := p.enterable(r, at); !ok {
		res.Result = blocked
		return res
	}

	idx := p.inventory.Index(itemID)
	item, err := p.inventory.Remove(itemID)
	if err != nil {
		res.Result = failFrom(err, "%s is not carrying %q", entity.Name(p), itemID)
		return res
	}
	if err := r.Add(item, at); err != nil {
		p.reinsert(p.inventory, idx, item)
		res.Result = failFrom(err, "cannot drop %s at %s", entity.Name(item), at)
		return res
	}
	res.Result = succeed("%s drops %s at %s", entity.Name(p), entity.Name(item), at)
	return res
}

// Wear moves a wearable item from the inventory to the worn list.
func (p *Person) Wear(itemID string) TransferResult {
	res := TransferResult{ItemID: itemID}
	item, ok := p.inventory.Find(itemID)
	if !ok {
		res.Result = fail(CodeNotFound, "%s is not carrying %q", entity.Name(p), itemID)
		return res
	}
	if !item.Physical().Wearable {
		res.Result = fail(CodeNotWearable, "%s cannot be worn", entity.Name(item))
		return res
	}
	if _, err := p.inventory.Remove(itemID); err != nil {
		res.Result = failFrom(err, "cannot take out %s", entity.Name(item))
		return res
	}
	p.worn = append(p.worn, item)
	res.Result = succeed("%s puts on %s", entity.Name(p), entity.Name(item))
	return res
}

// TakeOff moves a worn item back into the inventory.
func (p *Person) TakeOff(itemID string) TransferResult {
	res := TransferResult{ItemID: itemID}
	i := p.wornIndex(itemID)
	if i < 0 {
		res.Result = fail(CodeNotFound, "%s is not wearing %q", entity.Name(p), itemID)
		return res
	}
	item := p.worn[i]
	if err := p.inventory.Add(item); err != nil {
		res.Result = failFrom(err, "cannot stow %s", entity.Name(item))
		return res
	}
	p.worn = slices.Delete(p.worn, i, i+1)
	res.Result = succeed("%s takes off %s", entity.Name(p), entity.Name(item))
	return res
}

// OpenContainer opens a container in the inventory or within reach.
func (p *Person) OpenContainer(r Registry, containerID string) TransferResult {
	return p.setOpen(r, containerID, true)
}

// CloseContainer closes a container in the inventory or within reach.
func (p *Person) CloseContainer(r Registry, containerID string) TransferResult {
	return p.setOpen(r, containerID, false)
}

func (p *Person) setOpen(r Registry, containerID string, open bool) TransferResult {
	mustRegistry(r)
	res := TransferResult{ContainerID: containerID}
	c, out, ok := p.findContainer(r, containerID)
	if !ok {
		res.Result = out
		return res
	}
	if open {
		c.Open()
		res.Result = succeed("%s opens %s", entity.Name(p), entity.Name(c))
	} else {
		c.Close()
		res.Result = succeed("%s closes %s", entity.Name(p), entity.Name(c))
	}
	return res
}
