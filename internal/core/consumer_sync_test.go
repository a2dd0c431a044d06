package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"upgrade-editor/internal/types"
)

func TestResetModulesRemovesDisabledOverlay(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "120", moduleField(f.part, 0, "thrust"))

	f.handler.SetEnabled("A", false)
	catalog := BuildCatalog(f.part, NewNameSet(), NewNameSet(), f.handler)
	NewConsumerSync(f.handler).ResetModules(context.Background(), f.part, f.baseline, catalog, NewNameSet("A"))

	assert.Equal(t, "100", moduleField(f.part, 0, "thrust"))
	assert.Equal(t, "320", moduleField(f.part, 0, "isp"))
	assert.Equal(t, "low", moduleField(f.part, 1, "insulation"))
}

func TestStatsDeltaSurvivesResetWithoutCorrection(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, types.PartStats{Mass: 1.5, Cost: 150}, f.part.Stats())

	f.handler.SetEnabled("B", false)
	catalog := BuildCatalog(f.part, NewNameSet(), NewNameSet(), f.handler)
	// An empty disabled set skips the correction, exposing the stale delta.
	NewConsumerSync(f.handler).ResetModules(context.Background(), f.part, f.baseline, catalog, NewNameSet())
	assert.Equal(t, types.PartStats{Mass: 1.5, Cost: 150}, f.part.Stats())
}

func TestZeroDeltaCorrectionClearsCachedStats(t *testing.T) {
	f := newFixture(t)
	f.handler.SetEnabled("B", false)
	catalog := BuildCatalog(f.part, NewNameSet(), NewNameSet("B"), f.handler)

	NewConsumerSync(f.handler).ResetModules(context.Background(), f.part, f.baseline, catalog, NewNameSet("B"))

	assert.Equal(t, types.PartStats{Mass: 1, Cost: 100}, f.part.Stats())
	assert.False(t, f.handler.IsEnabled("B"), "temporary enable must be restored")
	assert.Empty(t, f.part.Modules()[2].Snapshot().AppliedUpgrades)
}

func TestResetModulesSkipsModuleWithoutBaselineNode(t *testing.T) {
	f := newFixture(t)
	definition := tankDefinition()
	definition.Modules = definition.Modules[:1]
	short := CaptureBaseline(definition)

	f.handler.SetEnabled("C", false)
	catalog := BuildCatalog(f.part, NewNameSet(), NewNameSet(), f.handler)
	NewConsumerSync(f.handler).ResetModules(context.Background(), f.part, short, catalog, NewNameSet("C"))

	assert.Equal(t, "60", moduleField(f.part, 1, "capacity"), "tank has no baseline node and keeps its state")
}

func TestResetModulesSkipsMismatchedBaselineNode(t *testing.T) {
	f := newFixture(t)
	definition := tankDefinition()
	definition.Modules[0].Upgrades = definition.Modules[0].Upgrades[1:]
	mismatched := CaptureBaseline(definition)

	f.handler.SetEnabled("A", false)
	catalog := BuildCatalog(f.part, NewNameSet(), NewNameSet(), f.handler)
	NewConsumerSync(f.handler).ResetModules(context.Background(), f.part, mismatched, catalog, NewNameSet("A"))

	assert.Equal(t, "120", moduleField(f.part, 0, "thrust"), "engine node lacks A and is left alone")
	assert.Equal(t, "low", moduleField(f.part, 1, "insulation"))
}

func TestBaselineIsImmutable(t *testing.T) {
	definition := tankDefinition()
	baseline := CaptureBaseline(definition)
	definition.Modules[0].Fields["thrust"] = "1"

	node, ok := baseline.Module(0)
	assert.True(t, ok)
	assert.Equal(t, "100", node.Fields["thrust"])
	node.Fields["thrust"] = "2"

	again, _ := baseline.Module(0)
	assert.Equal(t, "100", again.Fields["thrust"])

	_, ok = baseline.Module(7)
	assert.False(t, ok)
}
