package adapters

import (
	"sort"

	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

// moduleState is the bookkeeping shared by every simulated consumer:
// declared upgrades, live fields and the currently applied subset.
type moduleState struct {
	name        string
	displayName string
	handler     ports.UpgradeHandlerPort
	declared    []types.UpgradeNode
	fields      map[string]string
	applied     []string
}

func newModuleState(node types.ModuleNode, handler ports.UpgradeHandlerPort) moduleState {
	display := node.DisplayName
	if display == "" {
		display = node.Name
	}
	return moduleState{name: node.Name, displayName: display, handler: handler}
}

func (m *moduleState) Name() string {
	return m.name
}

func (m *moduleState) DisplayName() string {
	return m.displayName
}

func (m *moduleState) DeclaredUpgrades() []types.UpgradeDeclaration {
	out := make([]types.UpgradeDeclaration, 0, len(m.declared))
	for _, upgrade := range m.declared {
		out = append(out, types.UpgradeDeclaration{Name: upgrade.Name, Description: upgrade.Description})
	}
	return out
}

func (m *moduleState) FindUpgrades() {
	m.applied = m.applied[:0]
	for _, upgrade := range m.declared {
		if m.handler.IsUnlocked(upgrade.Name) && m.handler.IsEnabled(upgrade.Name) {
			m.applied = append(m.applied, upgrade.Name)
		}
	}
}

func (m *moduleState) HasAppliedUpgrades() bool {
	return len(m.applied) > 0
}

func (m *moduleState) load(node types.ModuleNode) {
	copied := node.Clone()
	m.declared = copied.Upgrades
	m.fields = copied.Fields
	if m.fields == nil {
		m.fields = map[string]string{}
	}
}

func (m *moduleState) appliedNodes() []types.UpgradeNode {
	var nodes []types.UpgradeNode
	for _, upgrade := range m.declared {
		for _, name := range m.applied {
			if upgrade.Name == name {
				nodes = append(nodes, upgrade)
				break
			}
		}
	}
	return nodes
}

func (m *moduleState) Snapshot() types.ModuleSnapshot {
	fields := make(map[string]string, len(m.fields))
	for key, value := range m.fields {
		fields[key] = value
	}
	applied := append([]string(nil), m.applied...)
	sort.Strings(applied)
	return types.ModuleSnapshot{
		Name:            m.name,
		DisplayName:     m.displayName,
		Fields:          fields,
		AppliedUpgrades: applied,
	}
}
