// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package board

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/oops"

	"github.com/holomush/gridcore/internal/entity"
)

// NameMatcher compiles a case-insensitive glob over entity names and ids.
// An empty pattern matches everything.
func NameMatcher(pattern string) (func(entity.Entity) bool, error) {
	if pattern == "" || pattern == "*" {
		return func(entity.Entity) bool { return true }, nil
	}
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, oops.Code(CodeInvalidPattern).
			With("pattern", pattern).
			Wrap(err)
	}
	return func(e entity.Entity) bool {
		c := e.Core()
		return g.Match(strings.ToLower(c.Name)) || g.Match(strings.ToLower(c.ID))
	}, nil
}

// FindByName returns registered entities whose name or id matches the glob
// pattern, ordered by id.
func (b *Board) FindByName(pattern string) ([]entity.Entity, error) {
	match, err := NameMatcher(pattern)
	if err != nil {
		return nil, err
	}
	var out []entity.Entity
	for _, e := range b.Entities() {
		if match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}
