// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package person

import (
	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/pathfind"
)

// Maximum per-axis distance of a single move.
const (
	WalkRange = 1
	RunRange  = 2
	JumpRange = 2
)

// Move walks (one cell) or runs (up to two cells) along a single axis.
// A run may not pass through a blocked cell.
func (p *Person) Move(r Registry, target entity.Position, running bool) MoveResult {
	mustRegistry(r)
	from, ok := p.Position()
	if !ok {
		return MoveResult{Result: fail(CodeNotPlaced, "%s is not on the board", entity.Name(p)), To: target}
	}
	res := MoveResult{From: from, To: target}
	if !r.IsValidPosition(target) {
		res.Result = fail(CodeOutOfBounds, "%s is outside the board", target)
		return res
	}

	limit, verb := WalkRange, "walk"
	if running {
		limit, verb = RunRange, "run"
	}
	dx, dy := from.Offset(target)
	switch {
	case dx == 0 && dy == 0:
		res.Result = fail(CodeInvalidDistance, "%s is already at %s", entity.Name(p), target)
		return res
	case abs(dx) > limit || abs(dy) > limit:
		res.Result = fail(CodeTooFar, "%s is too far to %s to from %s", target, verb, from)
		return res
	case dx != 0 && dy != 0:
		res.Result = fail(CodeDiagonal, "cannot %s diagonally from %s to %s", verb, from, target)
		return res
	}

	if abs(dx)+abs(dy) == 2 {
		mid := entity.Pos(from.X+sign(dx), from.Y+sign(dy))
		if blocked, ok := p.enterable(r, mid); !ok {
			res.Result = blocked
			return res
		}
	}
	if blocked, ok := p.enterable(r, target); !ok {
		res.Result = blocked
		return res
	}

	if err := r.Move(p, target); err != nil {
		res.Result = failFrom(err, "could not %s to %s", verb, target)
		return res
	}
	res.Result = succeed("%s %ss from %s to %s", entity.Name(p), verb, from, target)
	return res
}

// Jump leaps exactly two cells along one axis over a jumpable object.
// The cell jumped over is not touched.
func (p *Person) Jump(r Registry, target entity.Position) JumpResult {
	mustRegistry(r)
	from, ok := p.Position()
	if !ok {
		return JumpResult{Result: fail(CodeNotPlaced, "%s is not on the board", entity.Name(p)), To: target}
	}
	res := JumpResult{From: from, To: target}
	if !r.IsValidPosition(target) {
		res.Result = fail(CodeOutOfBounds, "%s is outside the board", target)
		return res
	}

	dx, dy := from.Offset(target)
	switch {
	case dx != 0 && dy != 0:
		res.Result = fail(CodeDiagonal, "cannot jump diagonally from %s to %s", from, target)
		return res
	case abs(dx)+abs(dy) != JumpRange:
		res.Result = fail(CodeInvalidDistance, "a jump must cover exactly %d cells, %s is %d away",
			JumpRange, target, abs(dx)+abs(dy))
		return res
	}

	over := entity.Pos(from.X+sign(dx), from.Y+sign(dy))
	res.Over = over
	if !r.JumpableAt(over) {
		res.Result = fail(CodeNotJumpable, "there is nothing to jump over at %s", over)
		return res
	}
	if blocked, ok := p.enterable(r, target); !ok {
		res.Result = blocked
		return res
	}

	if err := r.Move(p, target); err != nil {
		res.Result = failFrom(err, "could not jump to %s", target)
		return res
	}
	res.Result = succeed("%s jumps from %s over %s to %s", entity.Name(p), from, over, target)
	return res
}

// Travel walks a computed path to goal, jumping where the path jumps.
// It stops at the first step that fails; the steps already taken stand.
func (p *Person) Travel(r Registry, goal entity.Position) TravelResult {
	mustRegistry(r)
	from, ok := p.Position()
	if !ok {
		return TravelResult{Result: fail(CodeNotPlaced, "%s is not on the board", entity.Name(p))}
	}
	path := pathfind.FindPath(r, from, goal)
	res := TravelResult{Path: path, Visited: []entity.Position{from}}
	if len(path) == 0 {
		res.Result = fail(CodeUnreachable, "no route from %s to %s", from, goal)
		return res
	}

	for _, step := range pathfind.Steps(path) {
		var out Result
		if step.Kind == pathfind.StepJump {
			out = p.Jump(r, step.To).Result
		} else {
			out = p.Move(r, step.To, false).Result
		}
		if !out.Success {
			res.Result = out
			return res
		}
		res.Visited = append(res.Visited, step.To)
	}
	res.Result = succeed("%s travels from %s to %s in %d steps", entity.Name(p), from, goal, len(path)-1)
	return res
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
