// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package board implements the grid registry: the authoritative mapping from
// cells to the entities occupying them and from ids to entities.
//
// A Board is not safe for concurrent mutation. Callers serialize verbs;
// read-only queries may share a board between mutations.
package board

import (
	"log/slog"
	"slices"
	"sort"

	"github.com/samber/oops"

	"github.com/holomush/gridcore/internal/entity"
)

// Observer is notified after every successful registry mutation.
type Observer interface {
	OnAdd(e entity.Entity, at entity.Position)
	OnRemove(e entity.Entity, from entity.Position)
	OnMove(e entity.Entity, from, to entity.Position)
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for debug mutation logs.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithObserver registers an observer for mutations.
func WithObserver(o Observer) Option {
	return func(b *Board) {
		if o != nil {
			b.observers = append(b.observers, o)
		}
	}
}

// Board is the grid registry.
type Board struct {
	width, height int

	cells map[entity.Position][]entity.Entity
	byID  map[string]entity.Entity

	logger    *slog.Logger
	observers []Observer
}

// New creates an empty board of the given size.
func New(width, height int, opts ...Option) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, oops.Code(CodeInvalidDimensions).
			With("width", width).
			With("height", height).
			Wrap(ErrInvalidDimensions)
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make(map[entity.Position][]entity.Entity),
		byID:   make(map[string]entity.Entity),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Len returns the number of registered entities.
func (b *Board) Len() int { return len(b.byID) }

// IsValidPosition reports whether p lies inside the grid.
func (b *Board) IsValidPosition(p entity.Position) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// CanMoveTo reports whether p is in bounds and not obstructed by an
// immovable object. Movable objects and persons do not block here; callers
// that need stricter occupancy rules combine this with EntitiesAt.
func (b *Board) CanMoveTo(p entity.Position) bool {
	if !b.IsValidPosition(p) {
		return false
	}
	_, blocked := b.Blocker(p)
	return !blocked
}

// Blocker returns the first immovable object at p.
func (b *Board) Blocker(p entity.Position) (entity.Physical, bool) {
	for _, e := range b.cells[p] {
		if obj, ok := e.(entity.Physical); ok && obj.Physical().Blocks() {
			return obj, true
		}
	}
	return nil, false
}

// JumpableAt reports whether p holds an object that can be jumped over.
func (b *Board) JumpableAt(p entity.Position) bool {
	for _, e := range b.cells[p] {
		if obj, ok := e.(entity.Physical); ok && obj.Physical().Jumpable {
			return true
		}
	}
	return false
}

// EntitiesAt returns the entities at p. The slice is a copy.
func (b *Board) EntitiesAt(p entity.Position) []entity.Entity {
	return slices.Clone(b.cells[p])
}

// ObjectAt returns the first physical object at p.
func (b *Board) ObjectAt(p entity.Position) (entity.Physical, bool) {
	for _, e := range b.cells[p] {
		if obj, ok := e.(entity.Physical); ok {
			return obj, true
		}
	}
	return nil, false
}

// Entity returns the registered entity with the given id.
func (b *Board) Entity(id string) (entity.Entity, bool) {
	e, ok := b.byID[id]
	return e, ok
}

// Entities returns every registered entity ordered by id.
func (b *Board) Entities() []entity.Entity {
	out := make([]entity.Entity, 0, len(b.byID))
	for _, e := range b.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Core().ID < out[j].Core().ID
	})
	return out
}

// Within returns the entities inside the square of the given radius
// centered on center, scanning row by row. The square is clipped to the
// grid, so the scan never visits more than width*height cells.
func (b *Board) Within(center entity.Position, radius int) []entity.Entity {
	if radius < 0 {
		return nil
	}
	minX, maxX := span(center.X, radius, b.width)
	minY, maxY := span(center.Y, radius, b.height)
	var out []entity.Entity
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			out = append(out, b.cells[entity.Pos(x, y)]...)
		}
	}
	return out
}

// span clips [c-radius, c+radius] to [0, size). An empty span has lo > hi.
func span(c, radius, size int) (lo, hi int) {
	// c±radius can overflow for huge radii; compare against the distance
	// to each edge instead.
	lo, hi = 0, size-1
	if c-lo > radius {
		lo = c - radius
	}
	if hi-c > radius {
		hi = c + radius
	}
	return lo, hi
}

// Slot returns the index of e within its cell's entity list, or -1 when e
// is not registered.
func (b *Board) Slot(e entity.Entity) int {
	if e == nil {
		return -1
	}
	p, ok := e.Core().Position()
	if !ok || b.byID[e.Core().ID] != e {
		return -1
	}
	return slices.Index(b.cells[p], e)
}

// Add registers e at p. An entity that is already registered is relocated.
func (b *Board) Add(e entity.Entity, p entity.Position) error {
	if !b.IsValidPosition(p) {
		return b.outOfBounds(e, p)
	}
	id := e.Core().ID
	if existing, ok := b.byID[id]; ok {
		if existing != e {
			return oops.Code(CodeDuplicateEntity).
				With("id", id).
				Wrap(ErrDuplicateEntity)
		}
		return b.Move(e, p)
	}
	b.attach(e, p)
	b.logger.Debug("entity added", "id", id, "x", p.X, "y", p.Y)
	for _, o := range b.observers {
		o.OnAdd(e, p)
	}
	return nil
}

// Insert registers e at index i of the entity list at p, clamped to the
// list's bounds. An entity that is already registered is relocated to that
// slot. Rollbacks use it to put an entity back exactly where it was.
func (b *Board) Insert(e entity.Entity, p entity.Position, i int) error {
	if !b.IsValidPosition(p) {
		return b.outOfBounds(e, p)
	}
	id := e.Core().ID
	existing, registered := b.byID[id]
	if registered && existing != e {
		return oops.Code(CodeDuplicateEntity).
			With("id", id).
			Wrap(ErrDuplicateEntity)
	}
	if registered {
		from, _ := b.detach(e)
		b.attachAt(e, p, i)
		b.logger.Debug("entity moved", "id", id,
			"from_x", from.X, "from_y", from.Y, "to_x", p.X, "to_y", p.Y, "index", i)
		for _, o := range b.observers {
			o.OnMove(e, from, p)
		}
		return nil
	}
	b.attachAt(e, p, i)
	b.logger.Debug("entity added", "id", id, "x", p.X, "y", p.Y, "index", i)
	for _, o := range b.observers {
		o.OnAdd(e, p)
	}
	return nil
}

// Remove unregisters e. It reports whether anything was removed.
func (b *Board) Remove(e entity.Entity) bool {
	if e == nil {
		return false
	}
	from, ok := b.detach(e)
	if !ok {
		return false
	}
	b.logger.Debug("entity removed", "id", e.Core().ID, "x", from.X, "y", from.Y)
	for _, o := range b.observers {
		o.OnRemove(e, from)
	}
	return true
}

// Move relocates a registered entity to p as a single unit. On failure the
// entity stays in its original cell.
func (b *Board) Move(e entity.Entity, p entity.Position) error {
	if !b.IsValidPosition(p) {
		return b.outOfBounds(e, p)
	}
	id := e.Core().ID
	slot := b.Slot(e)
	from, ok := b.detach(e)
	if !ok {
		return oops.Code(CodeNotRegistered).
			With("id", id).
			Wrap(ErrNotRegistered)
	}
	if err := b.reattach(e, p, -1); err != nil {
		// The target was validated above; restoring is purely a safety net.
		if restoreErr := b.reattach(e, from, slot); restoreErr != nil {
			b.logger.Error("failed to restore entity after move",
				"id", id, "error", restoreErr)
		}
		return err
	}
	b.logger.Debug("entity moved", "id", id,
		"from_x", from.X, "from_y", from.Y, "to_x", p.X, "to_y", p.Y)
	for _, o := range b.observers {
		o.OnMove(e, from, p)
	}
	return nil
}

// reattach attaches e at slot i of p; a negative i appends.
func (b *Board) reattach(e entity.Entity, p entity.Position, i int) error {
	if !b.IsValidPosition(p) {
		return b.outOfBounds(e, p)
	}
	id := e.Core().ID
	if existing, ok := b.byID[id]; ok && existing != e {
		return oops.Code(CodeDuplicateEntity).
			With("id", id).
			Wrap(ErrDuplicateEntity)
	}
	if i < 0 {
		b.attach(e, p)
	} else {
		b.attachAt(e, p, i)
	}
	return nil
}

func (b *Board) attach(e entity.Entity, p entity.Position) {
	b.attachAt(e, p, len(b.cells[p]))
}

func (b *Board) attachAt(e entity.Entity, p entity.Position, i int) {
	cell := b.cells[p]
	i = max(0, min(i, len(cell)))
	b.cells[p] = slices.Insert(cell, i, e)
	b.byID[e.Core().ID] = e
	e.Core().Place(p)
}

// detach unregisters e from both indexes and returns its former cell.
func (b *Board) detach(e entity.Entity) (entity.Position, bool) {
	c := e.Core()
	if registered, ok := b.byID[c.ID]; !ok || registered != e {
		return entity.Position{}, false
	}
	p, placed := c.Position()
	if placed {
		cell := slices.DeleteFunc(b.cells[p], func(o entity.Entity) bool { return o == e })
		if len(cell) == 0 {
			delete(b.cells, p)
		} else {
			b.cells[p] = cell
		}
	}
	delete(b.byID, c.ID)
	c.Unplace()
	return p, true
}

func (b *Board) outOfBounds(e entity.Entity, p entity.Position) error {
	return oops.Code(CodeOutOfBounds).
		With("id", entity.ID(e)).
		With("x", p.X).
		With("y", p.Y).
		With("width", b.width).
		With("height", b.height).
		Wrap(ErrOutOfBounds)
}
