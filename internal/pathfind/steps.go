// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package pathfind

import "github.com/holomush/gridcore/internal/entity"

// StepKind distinguishes walking hops from jumps.
type StepKind string

// Step kinds.
const (
	StepWalk StepKind = "walk"
	StepJump StepKind = "jump"
)

// Step is one hop of a path.
type Step struct {
	From entity.Position `json:"from"`
	To   entity.Position `json:"to"`
	Kind StepKind        `json:"kind"`
}

// Steps classifies each hop of path. A hop of two cells is a jump.
func Steps(path []entity.Position) []Step {
	if len(path) < 2 {
		return nil
	}
	steps := make([]Step, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		kind := StepWalk
		if path[i-1].Manhattan(path[i]) == 2 {
			kind = StepJump
		}
		steps = append(steps, Step{From: path[i-1], To: path[i], Kind: kind})
	}
	return steps
}

// Cost sums the edge costs of path.
func Cost(path []entity.Position) float64 {
	total := 0.0
	for _, s := range Steps(path) {
		if s.Kind == StepJump {
			total += JumpCost
		} else {
			total += WalkCost
		}
	}
	return total
}
