// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

//go:build integration

package world_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/pathfind"
	"github.com/holomush/gridcore/internal/person"
	"github.com/holomush/gridcore/internal/script"
)

var _ = Describe("Warehouse scenario", func() {
	var env *testEnv

	BeforeEach(func() {
		env = newTestEnv()
	})

	Describe("Building", func() {
		It("places every top-level entity on the board", func() {
			Expect(env.world.Board.Len()).To(Equal(4))
			Expect(testutil.ToFloat64(env.metrics.BoardEntities)).To(Equal(4.0))
			Expect(env.positionOf("hero")).To(Equal(entity.Pos(1, 1)))
			Expect(env.positionOf("crate")).To(Equal(entity.Pos(2, 1)))
		})

		It("gives the actor its inventory and worn items", func() {
			hero := env.world.Actor
			_, ok := hero.Inventory().Find("key")
			Expect(ok).To(BeTrue())
			Expect(hero.IsWearing("cloak")).To(BeTrue())
		})

		It("keeps nested items off the board", func() {
			_, ok := env.world.Board.Entity("coin")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Running the scripted actions", func() {
		var outcomes []script.Outcome

		BeforeEach(func() {
			stmts, err := script.Parse(env.world.Actions)
			Expect(err).NotTo(HaveOccurred())
			x := script.NewExecutor(env.world.Board, env.world.Actor, script.WithRecorder(env.metrics))
			outcomes, err = x.Run(context.Background(), stmts)
			Expect(err).NotTo(HaveOccurred())
		})

		It("skips comment lines", func() {
			Expect(outcomes).To(HaveLen(4))
		})

		It("succeeds at every action", func() {
			for _, o := range outcomes {
				r := o.Result.Outcome()
				Expect(r.Success).To(BeTrue(), "line %d %q: %s", o.Line, o.Source, r.Message)
			}
		})

		It("moves the coin into the inventory", func() {
			_, ok := env.world.Actor.Inventory().Find("coin")
			Expect(ok).To(BeTrue())
		})

		It("pushes the crate and follows it", func() {
			Expect(env.positionOf("crate")).To(Equal(entity.Pos(3, 1)))
			Expect(env.positionOf("hero")).To(Equal(entity.Pos(2, 1)))
		})

		It("sees every object from the new cell", func() {
			look, ok := outcomes[3].Result.(person.LookResult)
			Expect(ok).To(BeTrue())
			Expect(look.Objects).To(HaveLen(3))
			Expect(look.Others).To(BeEmpty())
		})

		It("records one verb observation per action", func() {
			Expect(testutil.ToFloat64(env.metrics.VerbTotal.WithLabelValues("push", "OK"))).To(Equal(1.0))
			Expect(testutil.ToFloat64(env.metrics.VerbTotal.WithLabelValues("look", "OK"))).To(Equal(1.0))
		})
	})

	Describe("Jumping and travelling", func() {
		It("routes over a jumpable crate", func() {
			path := pathfind.FindPath(env.world.Board, entity.Pos(1, 1), entity.Pos(3, 1))
			Expect(path).To(Equal([]entity.Position{entity.Pos(1, 1), entity.Pos(3, 1)}))
			Expect(pathfind.Cost(path)).To(BeNumerically("~", pathfind.JumpCost))
		})

		It("jumps the actor over the crate", func() {
			res := env.world.Actor.Jump(env.world.Board, entity.Pos(3, 1))
			Expect(res.Success).To(BeTrue(), res.Message)
			Expect(env.positionOf("hero")).To(Equal(entity.Pos(3, 1)))
			Expect(env.positionOf("crate")).To(Equal(entity.Pos(2, 1)))
		})

		It("travels around the closed chest", func() {
			res := env.world.Actor.Travel(env.world.Board, entity.Pos(1, 3))
			Expect(res.Success).To(BeTrue(), res.Message)
			Expect(res.Visited).To(Equal(res.Path))
			Expect(env.positionOf("hero")).To(Equal(entity.Pos(1, 3)))
		})

		It("cannot travel into the wall", func() {
			res := env.world.Actor.Travel(env.world.Board, entity.Pos(4, 0))
			Expect(res.Success).To(BeFalse())
			Expect(res.Code).To(Equal(person.CodeUnreachable))
			Expect(env.positionOf("hero")).To(Equal(entity.Pos(1, 1)))
		})
	})

	Describe("Rollback", func() {
		It("puts the crate back when the pusher cannot follow", func() {
			faulty := &failingBoard{Board: env.world.Board, failMove: 1}
			res := env.world.Actor.Push(faulty, entity.Pos(2, 1), entity.East)

			Expect(res.Success).To(BeFalse())
			Expect(res.Code).To(Equal(person.CodeRollback))
			Expect(env.positionOf("crate")).To(Equal(entity.Pos(2, 1)))
			Expect(env.positionOf("hero")).To(Equal(entity.Pos(1, 1)))
		})
	})

	Describe("Exporting", func() {
		It("exports every board entity as a flat field map", func() {
			fields := env.world.Export()
			Expect(fields).To(HaveLen(4))
			for _, f := range fields {
				Expect(f).To(HaveKey("id"))
				Expect(f).To(HaveKey("kind"))
			}
		})
	})
})
