// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package person

import (
	"github.com/holomush/gridcore/internal/entity"
)

// Look lists every entity in the square of the given radius around the
// person, excluding the person, split into physical objects and everything
// else. It never mutates the registry.
func (p *Person) Look(r Registry, radius int) LookResult {
	mustRegistry(r)
	res := LookResult{Radius: radius}
	center, ok := p.Position()
	if !ok {
		res.Result = fail(CodeNotPlaced, "%s is not on the board", entity.Name(p))
		return res
	}
	res.Center = center
	if radius < 0 {
		res.Result = fail(CodeInvalidDistance, "look radius cannot be negative, got %d", radius)
		return res
	}

	for _, e := range r.Within(center, radius) {
		if e == entity.Entity(p) {
			continue
		}
		if obj, ok := entity.AsPhysical(e); ok {
			res.Objects = append(res.Objects, obj)
		} else {
			res.Others = append(res.Others, e)
		}
	}
	res.Result = succeed("%s sees %d objects and %d others", entity.Name(p), len(res.Objects), len(res.Others))
	return res
}

// Filter keeps only the seen entities accepted by match.
func (r LookResult) Filter(match func(entity.Entity) bool) LookResult {
	objects := r.Objects[:0:0]
	for _, o := range r.Objects {
		if match(o) {
			objects = append(objects, o)
		}
	}
	others := r.Others[:0:0]
	for _, e := range r.Others {
		if match(e) {
			others = append(others, e)
		}
	}
	r.Objects, r.Others = objects, others
	return r
}
