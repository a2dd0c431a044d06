package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"upgrade-editor/internal/adapters"
	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

// tankDefinition declares A on two modules, B on the engine and the stats
// consumer, C on the tank, and the locked D on the engine.
func tankDefinition() types.PartDefinition {
	return types.PartDefinition{
		Name:  "fuelTank",
		Title: "Fuel Tank",
		Stats: types.PartStats{Mass: 1, Cost: 100},
		Modules: []types.ModuleNode{
			{
				Name:        "ModuleEngines",
				DisplayName: "Engine",
				Fields:      map[string]string{"thrust": "100", "isp": "300"},
				Upgrades: []types.UpgradeNode{
					{Name: "A", Description: "More thrust", Values: map[string]string{"thrust": "120"}},
					{Name: "B", Description: "Better isp", Values: map[string]string{"isp": "320"}},
					{Name: "D", Values: map[string]string{"thrust": "999"}},
				},
			},
			{
				Name:        "ModuleTank",
				DisplayName: "Tank",
				Fields:      map[string]string{"capacity": "50", "insulation": "low"},
				Upgrades: []types.UpgradeNode{
					{Name: "C", Description: "Bigger tank", Values: map[string]string{"capacity": "60"}},
					{Name: "A", Values: map[string]string{"insulation": "high"}},
				},
			},
			{
				Name: "PartStatsUpgradeModule",
				Kind: types.ModuleKindStats,
				Upgrades: []types.UpgradeNode{
					{Name: "B", Stats: &types.PartStats{Mass: 0.5, Cost: 50}},
				},
			},
		},
	}
}

func tankTechTree() types.TechTreeFile {
	return types.TechTreeFile{Upgrades: []types.TechTreeUpgrade{
		{Name: "A", Title: "Upgrade A", Description: "General A", Unlocked: true},
		{Name: "B", Title: "Upgrade B", Unlocked: true},
		{Name: "C", Title: "Upgrade C", Unlocked: true},
		{Name: "D", Title: "Upgrade D", Unlocked: false},
	}}
}

type fixture struct {
	handler  *adapters.TechTreeHandler
	part     *adapters.LivePart
	baseline Baseline
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	definition := tankDefinition()
	handler := adapters.NewTechTreeHandler(tankTechTree())
	return fixture{
		handler:  handler,
		part:     adapters.NewLivePart(context.Background(), definition, handler),
		baseline: CaptureBaseline(definition),
	}
}

func (f fixture) open(t *testing.T, fields types.PersistedFields, overrides types.Overrides) *Session {
	t.Helper()
	session, err := OpenSession(context.Background(), SessionConfig{
		Part:      f.part,
		Handler:   f.handler,
		Baseline:  f.baseline,
		Fields:    fields,
		Overrides: overrides,
	})
	require.NoError(t, err)
	return session
}

func moduleField(part ports.PartPort, module int, key string) string {
	return part.Modules()[module].Snapshot().Fields[key]
}
