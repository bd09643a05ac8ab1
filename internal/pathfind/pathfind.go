// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package pathfind computes cardinal routes across a board, including
// routes that jump over obstacles.
package pathfind

import (
	"container/heap"

	"github.com/holomush/gridcore/internal/entity"
)

// Edge costs. A jump costs more than a walk step so that equal-length
// walking routes win and jumps are used only when they pay off.
const (
	WalkCost = 1.0
	JumpCost = 1.5
)

// Grid is the read-only view of a board the pathfinder needs.
type Grid interface {
	IsValidPosition(p entity.Position) bool
	CanMoveTo(p entity.Position) bool
	JumpableAt(p entity.Position) bool
}

type neighbor struct {
	pos  entity.Position
	cost float64
}

// neighbors returns the walk and jump successors of p in a fixed order.
func neighbors(g Grid, p entity.Position) []neighbor {
	out := make([]neighbor, 0, 8)
	for _, d := range entity.Cardinals {
		step := p.Step(d)
		if g.IsValidPosition(step) && g.CanMoveTo(step) {
			out = append(out, neighbor{pos: step, cost: WalkCost})
		}
		if !g.JumpableAt(step) {
			continue
		}
		landing := step.Step(d)
		if g.IsValidPosition(landing) && g.CanMoveTo(landing) {
			out = append(out, neighbor{pos: landing, cost: JumpCost})
		}
	}
	return out
}

// heuristic scales the Manhattan distance by the cheapest cost per cell
// (a jump covers two cells for JumpCost) so it never overestimates.
func heuristic(a, b entity.Position) float64 {
	return float64(a.Manhattan(b)) * JumpCost / 2
}

type node struct {
	pos    entity.Position
	g      float64
	f      float64
	seq    int
	index  int
	parent *node
}

// openSet is a min-heap on f; seq keeps equal-f entries in insertion order.
type openSet []*node

func (q openSet) Len() int { return len(q) }

func (q openSet) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q openSet) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openSet) Push(x any) {
	n := x.(*node)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *openSet) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// FindPath returns a minimal-cost route from start to goal, inclusive of
// both endpoints, or nil when either endpoint is off the grid or the goal
// is unreachable. The grid is never mutated.
func FindPath(g Grid, start, goal entity.Position) []entity.Position {
	if g == nil || !g.IsValidPosition(start) || !g.IsValidPosition(goal) {
		return nil
	}
	if start == goal {
		return []entity.Position{start}
	}

	open := &openSet{}
	seq := 0
	heap.Push(open, &node{pos: start, f: heuristic(start, goal)})
	gScore := map[entity.Position]float64{start: 0}
	closed := make(map[entity.Position]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		if _, done := closed[current.pos]; done {
			continue
		}
		closed[current.pos] = struct{}{}
		if current.pos == goal {
			return reconstruct(current)
		}

		for _, nb := range neighbors(g, current.pos) {
			if _, done := closed[nb.pos]; done {
				continue
			}
			tentative := current.g + nb.cost
			if prev, ok := gScore[nb.pos]; ok && tentative >= prev {
				continue
			}
			gScore[nb.pos] = tentative
			seq++
			heap.Push(open, &node{
				pos:    nb.pos,
				g:      tentative,
				f:      tentative + heuristic(nb.pos, goal),
				seq:    seq,
				parent: current,
			})
		}
	}
	return nil
}

func reconstruct(end *node) []entity.Position {
	var path []entity.Position
	for n := end; n != nil; n = n.parent {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
