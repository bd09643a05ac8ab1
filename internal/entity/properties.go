// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package entity

import "maps"

// Properties holds presentation-only metadata. Nothing in the simulation
// core reads these values; they are carried through to exporters untouched.
type Properties map[string]any

// Clone returns a shallow copy. Nil stays nil.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}
