// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package script

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/oops"

	"github.com/holomush/gridcore/internal/board"
	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/pathfind"
	"github.com/holomush/gridcore/internal/person"
)

// Recorder receives timing and outcome data for each executed action.
type Recorder interface {
	ObserveVerb(verb, code string, elapsed time.Duration)
	ObservePathfind(found bool, elapsed time.Duration)
}

// Outcome is the result of one statement.
type Outcome struct {
	Line   int            `json:"line"`
	Source string         `json:"source"`
	Verb   string         `json:"verb"`
	Result person.Outcome `json:"result"`
}

// PathResult reports a path query. It never moves anything.
type PathResult struct {
	person.Result
	From  entity.Position   `json:"from"`
	To    entity.Position   `json:"to"`
	Path  []entity.Position `json:"path"`
	Steps []pathfind.Step   `json:"steps"`
	Cost  float64           `json:"cost"`
}

// Option configures an Executor.
type Option func(*Executor)

// WithRecorder reports every action to r.
func WithRecorder(r Recorder) Option {
	return func(x *Executor) { x.recorder = r }
}

// WithLogger sets the executor's logger.
func WithLogger(l *slog.Logger) Option {
	return func(x *Executor) { x.logger = l }
}

// Executor runs statements for one actor against one registry.
type Executor struct {
	registry person.Registry
	actor    *person.Person
	recorder Recorder
	logger   *slog.Logger
}

// NewExecutor creates an executor. A nil actor or registry panics on the
// first statement.
func NewExecutor(r person.Registry, actor *person.Person, opts ...Option) *Executor {
	x := &Executor{registry: r, actor: actor, logger: slog.Default()}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Run executes every statement in order. Game-rule failures are recorded
// in the outcomes; only cancellation stops the run early.
func (x *Executor) Run(ctx context.Context, stmts []Statement) ([]Outcome, error) {
	out := make([]Outcome, 0, len(stmts))
	for _, s := range stmts {
		if err := ctx.Err(); err != nil {
			return out, oops.With("line", s.Line).Wrapf(err, "script interrupted")
		}
		out = append(out, x.Exec(s))
	}
	return out, nil
}

// Exec runs a single statement.
func (x *Executor) Exec(s Statement) Outcome {
	verb := s.Action.Verb()
	start := time.Now()
	res := x.dispatch(s.Action)
	elapsed := time.Since(start)

	r := res.Outcome()
	if x.recorder != nil {
		x.recorder.ObserveVerb(verb, string(r.Code), elapsed)
	}
	x.logger.Debug("action executed",
		"line", s.Line, "verb", verb, "success", r.Success, "code", r.Code)
	return Outcome{Line: s.Line, Source: s.Source, Verb: verb, Result: res}
}

func (x *Executor) dispatch(a *Action) person.Outcome {
	p, r := x.actor, x.registry
	switch {
	case a.Move != nil:
		return p.Move(r, pos(a.Move.At), a.Move.Run)
	case a.Cell != nil:
		at := pos(a.Cell.At)
		switch a.Cell.Verb {
		case "jump":
			return p.Jump(r, at)
		case "pull":
			return p.Pull(r, at)
		case "pickup":
			return p.PickUp(r, at)
		case "travel":
			return p.Travel(r, at)
		case "path":
			return x.path(at)
		}
	case a.Push != nil:
		dir, ok := entity.ParseDirection(a.Push.Direction)
		if !ok {
			return person.ShoveResult{
				Result: person.Result{
					Code:    person.CodeInvalidDir,
					Message: "unknown direction " + a.Push.Direction,
				},
				ObjectPosition: pos(a.Push.At),
			}
		}
		return p.Push(r, pos(a.Push.At), dir)
	case a.Get != nil:
		return p.GetFromContainer(r, a.Get.Container, a.Get.Item)
	case a.Put != nil:
		return p.PutInContainer(r, a.Put.Item, a.Put.Container)
	case a.Use != nil:
		if a.Use.Target == "" {
			return p.UseObject(a.Use.Item)
		}
		return p.UseObjectWith(r, a.Use.Item, a.Use.Target)
	case a.Look != nil:
		return x.look(a.Look)
	case a.Drop != nil:
		return p.Drop(r, a.Drop.Item, pos(a.Drop.At))
	case a.Item != nil:
		switch a.Item.Verb {
		case "wear":
			return p.Wear(a.Item.ID)
		case "takeoff":
			return p.TakeOff(a.Item.ID)
		case "open":
			return p.OpenContainer(r, a.Item.ID)
		case "close":
			return p.CloseContainer(r, a.Item.ID)
		}
	}
	return person.Result{Code: person.CodeInvalid, Message: "empty action"}
}

// DefaultLookRadius is used when a look gives no radius.
const DefaultLookRadius = 1

func (x *Executor) look(a *LookAction) person.Outcome {
	radius := DefaultLookRadius
	if a.Radius != nil {
		radius = *a.Radius
	}
	res := x.actor.Look(x.registry, radius)
	if !res.Success || a.Pattern == "" {
		return res
	}
	match, err := board.NameMatcher(a.Pattern)
	if err != nil {
		res.Result = person.Result{Code: person.CodeInvalid, Message: err.Error()}
		return res
	}
	return res.Filter(match)
}

func (x *Executor) path(goal entity.Position) person.Outcome {
	from, ok := x.actor.Position()
	res := PathResult{From: from, To: goal}
	if !ok {
		res.Result = person.Result{Code: person.CodeNotPlaced, Message: x.actor.Name + " is not on the board"}
		return res
	}
	start := time.Now()
	res.Path = pathfind.FindPath(x.registry, from, goal)
	if x.recorder != nil {
		x.recorder.ObservePathfind(res.Path != nil, time.Since(start))
	}
	if res.Path == nil {
		res.Result = person.Result{Code: person.CodeUnreachable, Message: "no route from " + from.String() + " to " + goal.String()}
		return res
	}
	res.Steps = pathfind.Steps(res.Path)
	res.Cost = pathfind.Cost(res.Path)
	res.Result = person.Result{Success: true, Code: person.CodeOK, Message: "route found"}
	return res
}

func pos(c Cell) entity.Position { return entity.Pos(c.X, c.Y) }
