// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package person_test

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/gridcore/internal/board"
	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/person"
)

func newBoard(t *testing.T, w, h int) *board.Board {
	t.Helper()
	b, err := board.New(w, h)
	require.NoError(t, err)
	return b
}

func place(t *testing.T, b *board.Board, e entity.Entity, at entity.Position) {
	t.Helper()
	require.NoError(t, b.Add(e, at))
}

func newHero(t *testing.T, b *board.Board, at entity.Position) *person.Person {
	t.Helper()
	p := person.New("hero", "Hero", 5, 3)
	place(t, b, p, at)
	return p
}

func wall(id string) *entity.Object {
	return entity.NewObject(id, "Wall "+id)
}

func crate(id string, weight int) *entity.Object {
	o := entity.NewObject(id, "Crate "+id)
	o.Movable = true
	o.Weight = weight
	return o
}

func item(id string) *entity.Object {
	o := entity.NewObject(id, id)
	o.Movable = true
	o.Collectable = true
	return o
}

func positionOf(t *testing.T, e entity.Entity) entity.Position {
	t.Helper()
	p, ok := e.Core().Position()
	require.True(t, ok, "%s is not placed", e.Core().ID)
	return p
}

// snapshot records where every registered entity is.
func snapshot(b *board.Board) map[string]entity.Position {
	out := map[string]entity.Position{}
	for _, e := range b.Entities() {
		p, _ := e.Core().Position()
		out[e.Core().ID] = p
	}
	return out
}

// cellIDs lists the ids at p in cell order.
func cellIDs(b *board.Board, p entity.Position) []string {
	var ids []string
	for _, e := range b.EntitiesAt(p) {
		ids = append(ids, e.Core().ID)
	}
	return ids
}

func contentIDs(c *entity.Container) []string {
	var ids []string
	for _, it := range c.Contents() {
		ids = append(ids, it.Core().ID)
	}
	return ids
}

func assertFailed(t *testing.T, r person.Result, code person.Code) {
	t.Helper()
	assert.False(t, r.Success, r.Message)
	assert.Equal(t, code, r.Code, r.Message)
	assert.NotEmpty(t, r.Message)
}

func assertSucceeded(t *testing.T, r person.Result) {
	t.Helper()
	assert.True(t, r.Success, r.Message)
	assert.Equal(t, person.CodeOK, r.Code)
}

// faultyRegistry fails the nth Add or Move call, counting from one.
type faultyRegistry struct {
	*board.Board
	failAdd, failMove int
	adds, moves       int
}

func (f *faultyRegistry) Add(e entity.Entity, p entity.Position) error {
	f.adds++
	if f.adds == f.failAdd {
		return oops.Code("INJECTED").Errorf("injected add failure")
	}
	return f.Board.Add(e, p)
}

func (f *faultyRegistry) Move(e entity.Entity, p entity.Position) error {
	f.moves++
	if f.moves == f.failMove {
		return oops.Code("INJECTED").Errorf("injected move failure")
	}
	return f.Board.Move(e, p)
}
