// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/gridcore/internal/entity"
)

func TestFields_Object(t *testing.T) {
	rock := entity.NewObject("rock", "Rock")
	rock.Weight = 4
	rock.Jumpable = true
	rock.UsableWith = entity.NewSet("b", "a")
	rock.Properties = entity.Properties{"emoji": "🪨"}
	rock.Place(entity.Pos(2, 1))

	f := entity.Fields(rock)

	assert.Equal(t, "rock", f["id"])
	assert.Equal(t, "object", f["kind"])
	assert.Equal(t, map[string]any{"x": 2, "y": 1}, f["position"])
	assert.Equal(t, false, f["is_movable"])
	assert.Equal(t, true, f["is_jumpable"])
	assert.Equal(t, 4, f["weight"])
	assert.Equal(t, []string{"a", "b"}, f["usable_with"])
	assert.Equal(t, entity.Properties{"emoji": "🪨"}, f["properties"])
	assert.NotContains(t, f, "capacity")
}

func TestFields_ContainerNestsContents(t *testing.T) {
	chest := entity.NewContainer("chest", "Chest", 2)
	require.NoError(t, chest.Add(entity.NewObject("coin", "Coin")))

	f := entity.Fields(chest)

	assert.Equal(t, "container", f["kind"])
	assert.Nil(t, f["position"])
	assert.Equal(t, 2, f["capacity"])
	assert.Equal(t, true, f["is_open"])
	contents, ok := f["contents"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, contents, 1)
	assert.Equal(t, "coin", contents[0]["id"])
	assert.Nil(t, contents[0]["position"])
}
