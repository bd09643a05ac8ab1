// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package person

import (
	"github.com/holomush/gridcore/internal/entity"
)

// carried finds an item in the inventory or the worn list.
func (p *Person) carried(id string) (entity.Physical, bool) {
	if item, ok := p.inventory.Find(id); ok {
		return item, true
	}
	if i := p.wornIndex(id); i >= 0 {
		return p.worn[i], true
	}
	return nil, false
}

// resolve finds an entity by id, searching the inventory, then objects
// within reach, then the whole board.
func (p *Person) resolve(r Registry, id string) (entity.Entity, Scope, bool) {
	if item, ok := p.carried(id); ok {
		return item, ScopeInventory, true
	}
	if from, ok := p.Position(); ok {
		for _, e := range r.Within(from, ReachRange) {
			if e.Core().ID != id {
				continue
			}
			if at, ok := e.Core().Position(); ok && from.Manhattan(at) <= ReachRange {
				return e, ScopeNearby, true
			}
		}
	}
	if e, ok := r.Entity(id); ok {
		return e, ScopeWorld, true
	}
	return nil, "", false
}

// UseObject uses a carried item on its own.
func (p *Person) UseObject(itemID string) UseResult {
	res := UseResult{ItemID: itemID}
	item, ok := p.carried(itemID)
	if !ok {
		res.Result = fail(CodeNotFound, "%s is not carrying %q", entity.Name(p), itemID)
		return res
	}
	if !item.Physical().UsableAlone {
		res.Result = fail(CodeNotUsable, "%s cannot be used on its own", entity.Name(item))
		return res
	}
	res.Result = succeed("%s uses %s", entity.Name(p), entity.Name(item))
	return res
}

// UseObjectWith uses a carried item with a target found in the inventory,
// within reach, or anywhere on the board. The item must declare the target
// in its usable-with set.
func (p *Person) UseObjectWith(r Registry, itemID, targetID string) UseResult {
	mustRegistry(r)
	res := UseResult{ItemID: itemID, TargetID: targetID}
	item, ok := p.carried(itemID)
	if !ok {
		res.Result = fail(CodeNotFound, "%s is not carrying %q", entity.Name(p), itemID)
		return res
	}
	target, scope, ok := p.resolve(r, targetID)
	if !ok {
		res.Result = fail(CodeNotFound, "there is no %q to use %s with", targetID, entity.Name(item))
		return res
	}
	res.TargetScope = scope
	if !item.Physical().CanUseWith(targetID) {
		res.Result = fail(CodeNotUsable, "%s cannot be used with %s", entity.Name(item), entity.Name(target))
		return res
	}
	res.Result = succeed("%s uses %s with %s", entity.Name(p), entity.Name(item), entity.Name(target))
	return res
}
