// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package board_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/gridcore/internal/board"
	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/pkg/errutil"
)

func newBoard(t *testing.T, w, h int, opts ...board.Option) *board.Board {
	t.Helper()
	b, err := board.New(w, h, opts...)
	require.NoError(t, err)
	return b
}

func wall(id string) *entity.Object {
	o := entity.NewObject(id, "Wall "+id)
	o.Movable = false
	return o
}

func crate(id string) *entity.Object {
	o := entity.NewObject(id, "Crate "+id)
	o.Movable = true
	return o
}

// assertIndexed checks the registry invariant for every registered entity.
func assertIndexed(t *testing.T, b *board.Board) {
	t.Helper()
	for _, e := range b.Entities() {
		p, ok := e.Core().Position()
		require.True(t, ok, "registered entity %s has no position", e.Core().ID)
		assert.Contains(t, b.EntitiesAt(p), e)
		got, ok := b.Entity(e.Core().ID)
		require.True(t, ok)
		assert.Same(t, e, got)
	}
}

func TestNew_RejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := board.New(dims[0], dims[1])
		require.ErrorIs(t, err, board.ErrInvalidDimensions)
		errutil.AssertErrorCode(t, err, board.CodeInvalidDimensions)
	}
}

func TestBoard_IsValidPosition(t *testing.T) {
	b := newBoard(t, 3, 2)

	tests := []struct {
		pos  entity.Position
		want bool
	}{
		{entity.Pos(0, 0), true},
		{entity.Pos(2, 1), true},
		{entity.Pos(3, 0), false},
		{entity.Pos(0, 2), false},
		{entity.Pos(-1, 0), false},
		{entity.Pos(0, -1), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.IsValidPosition(tt.pos), tt.pos.String())
	}
}

func TestBoard_CanMoveTo(t *testing.T) {
	b := newBoard(t, 4, 1)
	require.NoError(t, b.Add(wall("w"), entity.Pos(1, 0)))
	require.NoError(t, b.Add(crate("c"), entity.Pos(2, 0)))

	assert.True(t, b.CanMoveTo(entity.Pos(0, 0)), "empty cell")
	assert.False(t, b.CanMoveTo(entity.Pos(1, 0)), "immovable object blocks")
	assert.True(t, b.CanMoveTo(entity.Pos(2, 0)), "movable object does not block")
	assert.False(t, b.CanMoveTo(entity.Pos(4, 0)), "out of bounds")

	blocker, ok := b.Blocker(entity.Pos(1, 0))
	require.True(t, ok)
	assert.Equal(t, "w", blocker.Core().ID)
}

func TestBoard_AddRejectsOutOfBounds(t *testing.T) {
	b := newBoard(t, 2, 2)
	rock := wall("rock")

	err := b.Add(rock, entity.Pos(2, 0))
	errutil.AssertErrorCodeIs(t, err, board.CodeOutOfBounds, board.ErrOutOfBounds)
	errutil.AssertErrorContext(t, err, "x", 2)

	assert.Equal(t, 0, b.Len())
	assert.False(t, rock.Placed())
}

func TestBoard_AddRejectsDuplicateID(t *testing.T) {
	b := newBoard(t, 2, 2)
	require.NoError(t, b.Add(wall("rock"), entity.Pos(0, 0)))

	err := b.Add(wall("rock"), entity.Pos(1, 1))
	errutil.AssertErrorCodeIs(t, err, board.CodeDuplicateEntity, board.ErrDuplicateEntity)
	assert.Len(t, b.EntitiesAt(entity.Pos(1, 1)), 0)
	assertIndexed(t, b)
}

func TestBoard_AddRegisteredEntityRelocates(t *testing.T) {
	b := newBoard(t, 3, 3)
	rock := wall("rock")
	require.NoError(t, b.Add(rock, entity.Pos(0, 0)))
	require.NoError(t, b.Add(rock, entity.Pos(2, 2)))

	assert.Empty(t, b.EntitiesAt(entity.Pos(0, 0)))
	assert.Equal(t, []entity.Entity{rock}, b.EntitiesAt(entity.Pos(2, 2)))
	assert.Equal(t, 1, b.Len())
	assertIndexed(t, b)
}

func TestBoard_Remove(t *testing.T) {
	b := newBoard(t, 2, 2)
	rock := wall("rock")
	require.NoError(t, b.Add(rock, entity.Pos(1, 0)))

	assert.True(t, b.Remove(rock))
	assert.False(t, rock.Placed())
	assert.Empty(t, b.EntitiesAt(entity.Pos(1, 0)))
	_, ok := b.Entity("rock")
	assert.False(t, ok)

	assert.False(t, b.Remove(rock), "second remove is a no-op")
	assert.False(t, b.Remove(nil))
}

func TestBoard_RemoveIgnoresImpostor(t *testing.T) {
	b := newBoard(t, 2, 2)
	require.NoError(t, b.Add(wall("rock"), entity.Pos(0, 0)))

	assert.False(t, b.Remove(wall("rock")), "same id, different instance")
	assert.Equal(t, 1, b.Len())
}

func TestBoard_Move(t *testing.T) {
	b := newBoard(t, 3, 3)
	rock := crate("rock")
	require.NoError(t, b.Add(rock, entity.Pos(0, 0)))

	require.NoError(t, b.Move(rock, entity.Pos(1, 2)))
	p, ok := rock.Position()
	require.True(t, ok)
	assert.Equal(t, entity.Pos(1, 2), p)
	assert.Empty(t, b.EntitiesAt(entity.Pos(0, 0)))
	assertIndexed(t, b)
}

func TestBoard_MoveOutOfBoundsLeavesStateUnchanged(t *testing.T) {
	b := newBoard(t, 3, 3)
	rock := crate("rock")
	require.NoError(t, b.Add(rock, entity.Pos(1, 1)))

	err := b.Move(rock, entity.Pos(3, 1))
	require.ErrorIs(t, err, board.ErrOutOfBounds)

	p, _ := rock.Position()
	assert.Equal(t, entity.Pos(1, 1), p)
	assert.Equal(t, []entity.Entity{rock}, b.EntitiesAt(entity.Pos(1, 1)))
	assertIndexed(t, b)
}

func TestBoard_MoveUnregistered(t *testing.T) {
	b := newBoard(t, 3, 3)
	err := b.Move(crate("ghost"), entity.Pos(1, 1))
	require.ErrorIs(t, err, board.ErrNotRegistered)
}

func TestBoard_MoveRoundTrip(t *testing.T) {
	b := newBoard(t, 4, 4)
	rock := crate("rock")
	other := crate("other")
	require.NoError(t, b.Add(rock, entity.Pos(1, 1)))
	require.NoError(t, b.Add(other, entity.Pos(1, 1)))

	require.NoError(t, b.Move(rock, entity.Pos(2, 2)))
	require.NoError(t, b.Move(rock, entity.Pos(3, 0)))
	require.NoError(t, b.Move(rock, entity.Pos(1, 1)))

	assert.ElementsMatch(t, []entity.Entity{rock, other}, b.EntitiesAt(entity.Pos(1, 1)))
	assert.Empty(t, b.EntitiesAt(entity.Pos(2, 2)))
	assert.Empty(t, b.EntitiesAt(entity.Pos(3, 0)))
	assertIndexed(t, b)
}

func TestBoard_ObjectAtAndEntitiesAt(t *testing.T) {
	b := newBoard(t, 2, 2)
	assert.Empty(t, b.EntitiesAt(entity.Pos(0, 0)))
	assert.Empty(t, b.EntitiesAt(entity.Pos(-5, 9)), "invalid cell is empty")

	_, ok := b.ObjectAt(entity.Pos(0, 0))
	assert.False(t, ok)

	rock := crate("rock")
	require.NoError(t, b.Add(rock, entity.Pos(0, 0)))
	got, ok := b.ObjectAt(entity.Pos(0, 0))
	require.True(t, ok)
	assert.Same(t, rock, got)

	cell := b.EntitiesAt(entity.Pos(0, 0))
	cell[0] = nil
	assert.NotNil(t, b.EntitiesAt(entity.Pos(0, 0))[0], "EntitiesAt returns a copy")
}

func TestBoard_JumpableAt(t *testing.T) {
	b := newBoard(t, 3, 1)
	hedge := wall("hedge")
	hedge.Jumpable = true
	require.NoError(t, b.Add(hedge, entity.Pos(1, 0)))
	require.NoError(t, b.Add(wall("w"), entity.Pos(2, 0)))

	assert.True(t, b.JumpableAt(entity.Pos(1, 0)))
	assert.False(t, b.JumpableAt(entity.Pos(2, 0)))
	assert.False(t, b.JumpableAt(entity.Pos(0, 0)))
}

func TestBoard_Within(t *testing.T) {
	b := newBoard(t, 5, 5)
	near := crate("near")
	corner := crate("corner")
	far := crate("far")
	require.NoError(t, b.Add(near, entity.Pos(2, 1)))
	require.NoError(t, b.Add(corner, entity.Pos(3, 3)))
	require.NoError(t, b.Add(far, entity.Pos(4, 4)))

	got := b.Within(entity.Pos(2, 2), 1)
	assert.ElementsMatch(t, []entity.Entity{near, corner}, got)
	assert.Empty(t, b.Within(entity.Pos(0, 0), 0))
}

func TestBoard_WithinClipsToGrid(t *testing.T) {
	b := newBoard(t, 3, 3)
	a := crate("a")
	c := crate("c")
	require.NoError(t, b.Add(a, entity.Pos(0, 0)))
	require.NoError(t, b.Add(c, entity.Pos(2, 2)))

	tests := []struct {
		name   string
		center entity.Position
		radius int
		want   []entity.Entity
	}{
		{name: "huge radius", center: entity.Pos(1, 1), radius: 1_000_000, want: []entity.Entity{a, c}},
		{name: "max int radius", center: entity.Pos(1, 1), radius: math.MaxInt, want: []entity.Entity{a, c}},
		{name: "center off the board", center: entity.Pos(-4, 1), radius: 4, want: []entity.Entity{a}},
		{name: "out of reach off the board", center: entity.Pos(10, 10), radius: 2},
		{name: "negative radius", center: entity.Pos(0, 0), radius: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Within(tt.center, tt.radius)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestBoard_SlotAndInsert(t *testing.T) {
	b := newBoard(t, 3, 3)
	at := entity.Pos(1, 0)
	first, second := crate("first"), crate("second")
	require.NoError(t, b.Add(first, at))
	require.NoError(t, b.Add(second, at))
	assert.Equal(t, 0, b.Slot(first))
	assert.Equal(t, 1, b.Slot(second))

	slot := b.Slot(first)
	require.True(t, b.Remove(first))
	assert.Equal(t, -1, b.Slot(first))

	require.NoError(t, b.Insert(first, at, slot))
	assert.Equal(t, []entity.Entity{first, second}, b.EntitiesAt(at))
	got, ok := b.ObjectAt(at)
	require.True(t, ok)
	assert.Same(t, first, got)
	assertIndexed(t, b)
}

func TestBoard_InsertRelocatesRegisteredEntity(t *testing.T) {
	rec := &recordingObserver{}
	b := newBoard(t, 3, 3, board.WithObserver(rec))
	home := entity.Pos(0, 0)
	front, back := crate("front"), crate("back")
	require.NoError(t, b.Add(front, home))
	require.NoError(t, b.Add(back, home))
	require.NoError(t, b.Move(front, entity.Pos(2, 2)))

	require.NoError(t, b.Insert(front, home, 0))

	assert.Equal(t, []entity.Entity{front, back}, b.EntitiesAt(home))
	assert.Empty(t, b.EntitiesAt(entity.Pos(2, 2)))
	assert.Equal(t, "move front (2,2) (0,0)", rec.events[len(rec.events)-1])
	assertIndexed(t, b)
}

func TestBoard_InsertClampsAndRejects(t *testing.T) {
	b := newBoard(t, 2, 2)
	at := entity.Pos(0, 0)
	require.NoError(t, b.Add(crate("a"), at))
	late := crate("late")

	require.NoError(t, b.Insert(late, at, 99))
	assert.Equal(t, 1, b.Slot(late))

	err := b.Insert(crate("late"), at, 0)
	errutil.AssertErrorCode(t, err, board.CodeDuplicateEntity)

	err = b.Insert(crate("z"), entity.Pos(5, 5), 0)
	errutil.AssertErrorCode(t, err, board.CodeOutOfBounds)
}

func TestBoard_EntitiesSortedByID(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.NoError(t, b.Add(crate("b"), entity.Pos(0, 0)))
	require.NoError(t, b.Add(crate("a"), entity.Pos(1, 0)))
	require.NoError(t, b.Add(crate("c"), entity.Pos(2, 0)))

	var ids []string
	for _, e := range b.Entities() {
		ids = append(ids, e.Core().ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

type recordingObserver struct {
	events []string
}

func (r *recordingObserver) OnAdd(e entity.Entity, at entity.Position) {
	r.events = append(r.events, "add "+e.Core().ID+" "+at.String())
}

func (r *recordingObserver) OnRemove(e entity.Entity, from entity.Position) {
	r.events = append(r.events, "remove "+e.Core().ID+" "+from.String())
}

func (r *recordingObserver) OnMove(e entity.Entity, from, to entity.Position) {
	r.events = append(r.events, "move "+e.Core().ID+" "+from.String()+" "+to.String())
}

func TestBoard_ObserverAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := &recordingObserver{}
	b := newBoard(t, 3, 3, board.WithObserver(obs), board.WithLogger(logger))

	rock := crate("rock")
	require.NoError(t, b.Add(rock, entity.Pos(0, 0)))
	require.NoError(t, b.Move(rock, entity.Pos(1, 0)))
	require.Error(t, b.Move(rock, entity.Pos(9, 9)))
	b.Remove(rock)

	assert.Equal(t, []string{
		"add rock (0,0)",
		"move rock (0,0) (1,0)",
		"remove rock (1,0)",
	}, obs.events)
	assert.Contains(t, buf.String(), "entity moved")
}
