package adapters

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upgrade-editor/internal/types"
)

func TestTechTreeHandler(t *testing.T) {
	handler := NewTechTreeHandler(types.TechTreeFile{Upgrades: []types.TechTreeUpgrade{
		{Name: "A", Title: "Upgrade A", Unlocked: true},
		{Name: "D", Unlocked: false},
	}})

	assert.True(t, handler.IsUnlocked("A"))
	assert.True(t, handler.IsEnabled("A"))
	assert.False(t, handler.IsUnlocked("D"))
	assert.False(t, handler.IsEnabled("D"))
	assert.False(t, handler.IsUnlocked("Unknown"))

	handler.SetEnabled("A", false)
	assert.False(t, handler.IsEnabled("A"))

	handler.SetAllEnabled(true)
	assert.True(t, handler.AllEnabled())
	assert.True(t, handler.IsEnabled("A"))
	assert.False(t, handler.IsEnabled("D"), "locked upgrades stay off")

	handler.SetAllEnabled(false)
	assert.False(t, handler.IsEnabled("A"))

	meta, ok := handler.Metadata("A")
	require.True(t, ok)
	assert.Equal(t, "Upgrade A", meta.Title)
	_, ok = handler.Metadata("Unknown")
	assert.False(t, ok)
}

func TestLoadTechTree(t *testing.T) {
	adapter := NewTechTreeFileAdapter()
	tree, err := adapter.LoadTechTree("../../testdata/tech-tree.yaml")
	require.NoError(t, err)
	require.Len(t, tree.Upgrades, 4)
	assert.Equal(t, "General A", tree.Upgrades[0].Description)
	assert.False(t, tree.Upgrades[3].Unlocked)

	_, err = adapter.LoadTechTree(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
