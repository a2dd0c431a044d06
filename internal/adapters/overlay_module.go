package adapters

import (
	"context"

	"github.com/rs/zerolog/log"

	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

// OverlayModule writes each applied upgrade's values over its fields, in
// declaration order. There is no way to take an overlay back out.
type OverlayModule struct {
	moduleState
}

func NewOverlayModule(node types.ModuleNode, handler ports.UpgradeHandlerPort) *OverlayModule {
	return &OverlayModule{moduleState: newModuleState(node, handler)}
}

func (m *OverlayModule) ResetToBaseline() {
	m.fields = map[string]string{}
	m.applied = nil
}

func (m *OverlayModule) LoadFrom(ctx context.Context, node types.ModuleNode) {
	m.load(node)
	m.FindUpgrades()
	if m.HasAppliedUpgrades() {
		m.ApplyUpgrades(ctx)
	}
}

func (m *OverlayModule) ApplyUpgrades(ctx context.Context) {
	for _, upgrade := range m.appliedNodes() {
		for key, value := range upgrade.Values {
			m.fields[key] = value
		}
	}
	log.Ctx(ctx).Debug().
		Str("module", m.name).
		Strs("applied", m.applied).
		Msg("upgrades applied")
}
