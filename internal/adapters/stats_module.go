package adapters

import (
	"context"

	"github.com/rs/zerolog/log"

	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

// StatsModule adds the stat deltas of its applied upgrades to the part.
// With nothing applied it leaves the part's stats alone, and a reset does
// not touch them either, so the last delta it wrote stays cached on the
// part until another apply cycle overwrites it.
type StatsModule struct {
	moduleState
	part *LivePart
	base types.PartStats
}

func NewStatsModule(node types.ModuleNode, handler ports.UpgradeHandlerPort, part *LivePart, base types.PartStats) *StatsModule {
	return &StatsModule{moduleState: newModuleState(node, handler), part: part, base: base}
}

func (m *StatsModule) ResetToBaseline() {
	m.applied = nil
}

func (m *StatsModule) LoadFrom(ctx context.Context, node types.ModuleNode) {
	m.load(node)
	m.FindUpgrades()
	if m.HasAppliedUpgrades() {
		m.ApplyUpgrades(ctx)
	}
}

func (m *StatsModule) ApplyUpgrades(ctx context.Context) {
	if !m.HasAppliedUpgrades() {
		return
	}
	total := m.base
	for _, upgrade := range m.appliedNodes() {
		if upgrade.Stats != nil {
			total = total.Add(*upgrade.Stats)
		}
	}
	m.part.setStats(total)
	log.Ctx(ctx).Debug().
		Str("module", m.name).
		Float64("mass", total.Mass).
		Float64("cost", total.Cost).
		Msg("part stats updated")
}

func (m *StatsModule) SupportsZeroDeltaOverride() bool {
	return true
}

var _ ports.ZeroDeltaOverrider = (*StatsModule)(nil)
