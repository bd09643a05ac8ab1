// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package entity

// FieldExporter is implemented by entity variants defined outside this
// package that contribute their own fields to the flat export.
type FieldExporter interface {
	ExportFields(fields map[string]any)
}

// Fields returns the flat field map an exporter must surface for e.
// Container contents are exported as nested field maps.
func Fields(e Entity) map[string]any {
	c := e.Core()
	fields := map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
		"kind":        string(e.Kind()),
		"position":    nil,
	}
	if p, ok := c.Position(); ok {
		fields["position"] = map[string]any{"x": p.X, "y": p.Y}
	}
	if len(c.Properties) > 0 {
		fields["properties"] = c.Properties.Clone()
	}

	if p, ok := e.(Physical); ok {
		o := p.Physical()
		fields["is_movable"] = o.Movable
		fields["is_jumpable"] = o.Jumpable
		fields["is_usable_alone"] = o.UsableAlone
		fields["is_collectable"] = o.Collectable
		fields["is_wearable"] = o.Wearable
		fields["weight"] = o.Weight
		fields["usable_with"] = o.UsableWith.Sorted()
		fields["possible_actions"] = o.PossibleActions.Sorted()
	}

	if h, ok := e.(Holder); ok {
		store := h.Storage()
		fields["capacity"] = store.Capacity
		fields["is_open"] = store.IsOpen
		fields["contents"] = FieldsList(store.contents)
	}

	if x, ok := e.(FieldExporter); ok {
		x.ExportFields(fields)
	}
	return fields
}

// FieldsList exports each item in order.
func FieldsList[E Entity](items []E) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, Fields(item))
	}
	return out
}
