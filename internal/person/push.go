// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package person

import (
	"log/slog"

	"github.com/holomush/gridcore/internal/entity"
)

// shoveTarget validates the checks push and pull share: the person is
// placed, the object cell is one cardinal step away, and the first object
// there is movable and light enough.
func (p *Person) shoveTarget(r Registry, verb string, objectPos entity.Position) (entity.Position, entity.Physical, Result, bool) {
	from, ok := p.Position()
	if !ok {
		return from, nil, fail(CodeNotPlaced, "%s is not on the board", entity.Name(p)), false
	}
	if !r.IsValidPosition(objectPos) {
		return from, nil, fail(CodeOutOfBounds, "%s is outside the board", objectPos), false
	}
	dx, dy := from.Offset(objectPos)
	switch {
	case dx != 0 && dy != 0:
		return from, nil, fail(CodeDiagonal, "cannot %s diagonally from %s to %s", verb, from, objectPos), false
	case abs(dx)+abs(dy) != 1:
		return from, nil, fail(CodeTooFar, "%s is not next to %s", objectPos, entity.Name(p)), false
	}

	obj, ok := r.ObjectAt(objectPos)
	if !ok {
		return from, nil, fail(CodeNotFound, "there is nothing to %s at %s", verb, objectPos), false
	}
	o := obj.Physical()
	if !o.Movable {
		return from, obj, fail(CodeNotMovable, "%s cannot be moved", entity.Name(obj)), false
	}
	if o.Weight > p.Strength {
		return from, obj, fail(CodeTooHeavy, "%s is too heavy to %s (weight %d, strength %d)",
			entity.Name(obj), verb, o.Weight, p.Strength), false
	}
	return from, obj, Result{}, true
}

// Push shoves the object at objectPos one cell in dir and steps into the
// cell it vacated.
func (p *Person) Push(r Registry, objectPos entity.Position, dir entity.Direction) ShoveResult {
	mustRegistry(r)
	res := ShoveResult{ObjectPosition: objectPos}
	if !dir.IsCardinal() {
		res.Result = fail(CodeInvalidDir, "%s is not a cardinal direction", dir)
		return res
	}
	from, obj, out, ok := p.shoveTarget(r, "push", objectPos)
	res.PersonPosition = from
	res.ObjectID = entity.ID(obj)
	if !ok {
		res.Result = out
		return res
	}

	dest := objectPos.Step(dir)
	if !r.IsValidPosition(dest) {
		res.Result = fail(CodeOutOfBounds, "cannot push %s off the board", entity.Name(obj))
		return res
	}
	if dest == from {
		res.Result = fail(CodeBlocked, "cannot push %s into %s, %s is there", entity.Name(obj), dest, entity.Name(p))
		return res
	}
	if other, busy := p.occupied(r, dest); busy {
		res.Result = fail(CodeBlocked, "cannot push %s into %s, %s is there", entity.Name(obj), dest, entity.Name(other))
		return res
	}

	// obj is movable, so it never blocks its own cell.
	if blocked, ok := p.enterable(r, objectPos); !ok {
		res.Result = blocked
		return res
	}

	slot := r.Slot(obj)
	r.Remove(obj)
	if err := r.Add(obj, dest); err != nil {
		p.restore(r, obj, objectPos, slot)
		res.Result = rolledBack(err, "could not push %s to %s", entity.Name(obj), dest)
		return res
	}
	if err := r.Move(p, objectPos); err != nil {
		p.restore(r, obj, objectPos, slot)
		res.Result = rolledBack(err, "could not follow %s to %s", entity.Name(obj), objectPos)
		return res
	}

	res.ObjectPosition = dest
	res.PersonPosition = objectPos
	res.Result = succeed("%s pushes %s %s to %s", entity.Name(p), entity.Name(obj), dir, dest)
	return res
}

// Pull steps one cell directly away from the object at objectPos and drags
// it into the cell the person left.
func (p *Person) Pull(r Registry, objectPos entity.Position) ShoveResult {
	mustRegistry(r)
	res := ShoveResult{ObjectPosition: objectPos}
	from, obj, out, ok := p.shoveTarget(r, "pull", objectPos)
	res.PersonPosition = from
	res.ObjectID = entity.ID(obj)
	if !ok {
		res.Result = out
		return res
	}

	away, _ := entity.DirectionBetween(objectPos, from)
	dest := from.Step(away)
	if !r.IsValidPosition(dest) {
		res.Result = fail(CodeOutOfBounds, "no room to back up to %s", dest)
		return res
	}
	if blocked, ok := p.enterable(r, dest); !ok {
		res.Result = blocked
		return res
	}
	if other, busy := p.occupied(r, from); busy {
		res.Result = fail(CodeBlocked, "cannot pull %s into %s, %s is there", entity.Name(obj), from, entity.Name(other))
		return res
	}

	objSlot, personSlot := r.Slot(obj), r.Slot(p)
	r.Remove(obj)
	if err := r.Move(p, dest); err != nil {
		p.restore(r, obj, objectPos, objSlot)
		res.Result = rolledBack(err, "could not back up to %s", dest)
		return res
	}
	if err := r.Add(obj, from); err != nil {
		p.retreat(r, from, personSlot)
		p.restore(r, obj, objectPos, objSlot)
		res.Result = rolledBack(err, "could not pull %s to %s", entity.Name(obj), from)
		return res
	}

	res.ObjectPosition = from
	res.PersonPosition = dest
	res.Result = succeed("%s pulls %s to %s", entity.Name(p), entity.Name(obj), from)
	return res
}

// restore puts obj back into slot i of its original cell, whether it was
// removed or already moved elsewhere.
func (p *Person) restore(r Registry, obj entity.Physical, at entity.Position, i int) {
	if err := r.Insert(obj, at, i); err != nil {
		slog.Warn("rollback failed: could not restore object",
			"person", p.ID, "object", entity.ID(obj), "x", at.X, "y", at.Y, "error", err)
	}
}

// retreat moves the person back into slot i of its original cell.
func (p *Person) retreat(r Registry, at entity.Position, i int) {
	if err := r.Insert(p, at, i); err != nil {
		slog.Warn("rollback failed: could not return person",
			"person", p.ID, "x", at.X, "y", at.Y, "error", err)
	}
}
