package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upgrade-editor/internal/types"
)

func loadTankPart(t *testing.T) (*LivePart, *TechTreeHandler, types.PartDefinition) {
	t.Helper()
	definition, err := NewPartDefinitionFileAdapter().LoadDefinition("../../testdata/parts/fuel-tank.yaml")
	require.NoError(t, err)
	tree, err := NewTechTreeFileAdapter().LoadTechTree("../../testdata/tech-tree.yaml")
	require.NoError(t, err)
	handler := NewTechTreeHandler(tree)
	return NewLivePart(context.Background(), definition, handler), handler, definition
}

func TestLivePartAppliesUnlockedUpgrades(t *testing.T) {
	part, _, _ := loadTankPart(t)

	require.Len(t, part.Modules(), 3)
	engine := part.Modules()[0].Snapshot()
	assert.Equal(t, "120", engine.Fields["thrust"])
	assert.Equal(t, "320", engine.Fields["isp"])
	assert.Equal(t, []string{"A", "B"}, engine.AppliedUpgrades)
	assert.Equal(t, types.PartStats{Mass: 1.5, Cost: 150}, part.Stats())
}

func TestOverlayModuleReload(t *testing.T) {
	part, handler, definition := loadTankPart(t)
	engine := part.Modules()[0]

	handler.SetEnabled("A", false)
	engine.ResetToBaseline()
	engine.LoadFrom(context.Background(), definition.Modules[0])

	snapshot := engine.Snapshot()
	assert.Equal(t, "100", snapshot.Fields["thrust"])
	assert.Equal(t, []string{"B"}, snapshot.AppliedUpgrades)
	assert.True(t, engine.HasAppliedUpgrades())
}

func TestOverlayModuleDoesNotMutateDefinition(t *testing.T) {
	part, _, definition := loadTankPart(t)
	assert.Equal(t, "100", definition.Modules[0].Fields["thrust"])
	assert.Equal(t, "120", part.Modules()[0].Snapshot().Fields["thrust"])
}

func TestStatsModuleKeepsCachedDelta(t *testing.T) {
	part, handler, definition := loadTankPart(t)
	stats := part.Modules()[2]

	handler.SetEnabled("B", false)
	stats.ResetToBaseline()
	stats.LoadFrom(context.Background(), definition.Modules[2])

	assert.False(t, stats.HasAppliedUpgrades())
	assert.Equal(t, types.PartStats{Mass: 1.5, Cost: 150}, part.Stats())

	overrider, ok := stats.(*StatsModule)
	require.True(t, ok)
	assert.True(t, overrider.SupportsZeroDeltaOverride())
}
