// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/gridcore/internal/board"
	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/pathfind"
)

func newBoard(t *testing.T, w, h int) *board.Board {
	t.Helper()
	b, err := board.New(w, h)
	require.NoError(t, err)
	return b
}

func place(t *testing.T, b *board.Board, id string, p entity.Position, movable, jumpable bool) *entity.Object {
	t.Helper()
	o := entity.NewObject(id, id)
	o.Movable = movable
	o.Jumpable = jumpable
	require.NoError(t, b.Add(o, p))
	return o
}

func TestFindPath_EmptyCorridor(t *testing.T) {
	b := newBoard(t, 5, 1)

	path := pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(4, 0))

	assert.Equal(t, []entity.Position{
		entity.Pos(0, 0), entity.Pos(1, 0), entity.Pos(2, 0), entity.Pos(3, 0), entity.Pos(4, 0),
	}, path)
	assert.InDelta(t, 4.0, pathfind.Cost(path), 1e-9)
}

func TestFindPath_JumpsSingleObstacle(t *testing.T) {
	b := newBoard(t, 3, 1)
	place(t, b, "hedge", entity.Pos(1, 0), false, true)

	path := pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(2, 0))

	assert.Equal(t, []entity.Position{entity.Pos(0, 0), entity.Pos(2, 0)}, path)
	steps := pathfind.Steps(path)
	require.Len(t, steps, 1)
	assert.Equal(t, pathfind.StepJump, steps[0].Kind)
}

func TestFindPath_PrefersJumpOverLongDetour(t *testing.T) {
	b := newBoard(t, 3, 3)
	place(t, b, "hedge", entity.Pos(1, 0), false, true)

	path := pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(2, 0))

	assert.Equal(t, []entity.Position{entity.Pos(0, 0), entity.Pos(2, 0)}, path)
}

func TestFindPath_JumpOverLooseCrate(t *testing.T) {
	b := newBoard(t, 3, 1)
	// A movable, jumpable crate does not block walking, so both a jump (1.5)
	// and a two-step walk (2.0) reach the goal.
	place(t, b, "crate", entity.Pos(1, 0), true, true)

	path := pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(2, 0))
	assert.InDelta(t, 1.5, pathfind.Cost(path), 1e-9)
}

func TestFindPath_WalksWhenNothingToJump(t *testing.T) {
	b := newBoard(t, 3, 1)

	walk := pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(2, 0))
	assert.Len(t, walk, 3)
	for _, s := range pathfind.Steps(walk) {
		assert.Equal(t, pathfind.StepWalk, s.Kind)
	}
}

func TestFindPath_Unreachable(t *testing.T) {
	b := newBoard(t, 5, 3)
	for _, p := range []entity.Position{
		entity.Pos(1, 0), entity.Pos(3, 0), entity.Pos(2, 1),
	} {
		place(t, b, p.String(), p, false, false)
	}
	// (2,0) sits on the top edge, so its fourth side is the board border.

	assert.Empty(t, pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(2, 0)))
}

func TestFindPath_UnreachableFullyWalled(t *testing.T) {
	b := newBoard(t, 5, 5)
	for _, p := range []entity.Position{
		entity.Pos(2, 1), entity.Pos(1, 2), entity.Pos(3, 2), entity.Pos(2, 3),
	} {
		place(t, b, p.String(), p, false, false)
	}

	assert.Empty(t, pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(2, 2)))
}

func TestFindPath_InvalidEndpoints(t *testing.T) {
	b := newBoard(t, 3, 3)

	assert.Empty(t, pathfind.FindPath(b, entity.Pos(-1, 0), entity.Pos(2, 2)))
	assert.Empty(t, pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(3, 3)))
	assert.Empty(t, pathfind.FindPath(nil, entity.Pos(0, 0), entity.Pos(1, 1)))
}

func TestFindPath_StartEqualsGoal(t *testing.T) {
	b := newBoard(t, 3, 3)
	assert.Equal(t, []entity.Position{entity.Pos(1, 1)},
		pathfind.FindPath(b, entity.Pos(1, 1), entity.Pos(1, 1)))
}

func TestFindPath_RoutesAroundWall(t *testing.T) {
	b := newBoard(t, 3, 3)
	place(t, b, "w1", entity.Pos(1, 0), false, false)
	place(t, b, "w2", entity.Pos(1, 1), false, false)

	path := pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(2, 0))

	require.NotEmpty(t, path)
	assert.Equal(t, entity.Pos(0, 0), path[0])
	assert.Equal(t, entity.Pos(2, 0), path[len(path)-1])
	assert.Len(t, path, 7, "down, across the bottom row, and back up")
	for _, p := range path {
		assert.True(t, b.CanMoveTo(p), "path crosses blocked cell %s", p)
	}
}

func TestFindPath_ChainedJumps(t *testing.T) {
	b := newBoard(t, 5, 1)
	place(t, b, "h1", entity.Pos(1, 0), false, true)
	place(t, b, "h2", entity.Pos(3, 0), false, true)

	path := pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(4, 0))

	assert.Equal(t, []entity.Position{entity.Pos(0, 0), entity.Pos(2, 0), entity.Pos(4, 0)}, path)
	assert.InDelta(t, 3.0, pathfind.Cost(path), 1e-9)
}

func TestFindPath_JumpLandingMustBeFree(t *testing.T) {
	b := newBoard(t, 3, 1)
	place(t, b, "hedge", entity.Pos(1, 0), false, true)
	place(t, b, "wall", entity.Pos(2, 0), false, false)

	assert.Empty(t, pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(2, 0)))
}

func TestFindPath_DoesNotMutateBoard(t *testing.T) {
	b := newBoard(t, 4, 4)
	hedge := place(t, b, "hedge", entity.Pos(1, 0), false, true)

	_ = pathfind.FindPath(b, entity.Pos(0, 0), entity.Pos(3, 3))

	p, ok := hedge.Position()
	require.True(t, ok)
	assert.Equal(t, entity.Pos(1, 0), p)
	assert.Equal(t, 1, b.Len())
}

func TestSteps_ShortPaths(t *testing.T) {
	assert.Nil(t, pathfind.Steps(nil))
	assert.Nil(t, pathfind.Steps([]entity.Position{entity.Pos(0, 0)}))
	assert.Zero(t, pathfind.Cost(nil))
}
