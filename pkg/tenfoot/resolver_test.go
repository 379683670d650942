package tenfoot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFiltersIneligibleTargets(t *testing.T) {
	container := &ItemContainer{Items: []*Item{
		{Name: "ok"},
		{Name: "disabled", Disabled: true},
		{Name: "hidden", Hidden: true},
		{Name: "optout", Unreachable: true},
		{Name: "also-ok"},
	}}

	set := Resolve(container)
	require.Len(t, set, 2)
	assert.Equal(t, "ok", set[0].ID())
	assert.Equal(t, "also-ok", set[1].ID(), "document order is preserved")
}

func TestResolveAbsentContainer(t *testing.T) {
	assert.Empty(t, Resolve(nil), "absent container degrades to an empty set")
	assert.Empty(t, Resolve(&ItemContainer{}))
}

func TestIsFocusable(t *testing.T) {
	assert.False(t, IsFocusable(nil))
	assert.True(t, IsFocusable(&Item{Name: "a"}))
	assert.False(t, IsFocusable(&Item{Name: "a", Disabled: true}))
	assert.False(t, IsFocusable(&Item{Name: "a", Hidden: true}))
	assert.False(t, IsFocusable(&Item{Name: "a", Unreachable: true}))
}
