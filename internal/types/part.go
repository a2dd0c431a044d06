package types

// PartStats holds the part-level numbers a stats consumer adjusts.
type PartStats struct {
	Mass float64 `yaml:"mass" toml:"mass"`
	Cost float64 `yaml:"cost" toml:"cost"`
}

// Add returns the element-wise sum of two stat blocks.
func (s PartStats) Add(delta PartStats) PartStats {
	return PartStats{Mass: s.Mass + delta.Mass, Cost: s.Cost + delta.Cost}
}

// UpgradeNode is one upgrade as declared inside a module node. Values is
// an overlay written over the module's fields when the upgrade applies;
// Stats is only meaningful for stats consumers.
type UpgradeNode struct {
	Name        string            `yaml:"name" toml:"name"`
	Description string            `yaml:"description,omitempty" toml:"description,omitempty"`
	Values      map[string]string `yaml:"values,omitempty" toml:"values,omitempty"`
	Stats       *PartStats        `yaml:"stats,omitempty" toml:"stats,omitempty"`
}

type ModuleNode struct {
	Name        string            `yaml:"name" toml:"name"`
	Kind        ModuleKind        `yaml:"kind,omitempty" toml:"kind,omitempty"`
	DisplayName string            `yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	Fields      map[string]string `yaml:"fields,omitempty" toml:"fields,omitempty"`
	Upgrades    []UpgradeNode     `yaml:"upgrades,omitempty" toml:"upgrades,omitempty"`
}

// Upgrade returns the node's declaration of the named upgrade.
func (m ModuleNode) Upgrade(name string) (UpgradeNode, bool) {
	for _, upgrade := range m.Upgrades {
		if upgrade.Name == name {
			return upgrade, true
		}
	}
	return UpgradeNode{}, false
}

// Clone returns a deep copy so callers can mutate the result without
// touching the node it came from.
func (m ModuleNode) Clone() ModuleNode {
	out := m
	out.Fields = cloneValues(m.Fields)
	out.Upgrades = make([]UpgradeNode, len(m.Upgrades))
	for i, upgrade := range m.Upgrades {
		copied := upgrade
		copied.Values = cloneValues(upgrade.Values)
		if upgrade.Stats != nil {
			stats := *upgrade.Stats
			copied.Stats = &stats
		}
		out.Upgrades[i] = copied
	}
	return out
}

// PartDefinition is a part's config before any upgrade was applied.
type PartDefinition struct {
	Name             string       `yaml:"name" toml:"name"`
	Title            string       `yaml:"title,omitempty" toml:"title,omitempty"`
	Stats            PartStats    `yaml:"stats" toml:"stats"`
	UpgradesToIgnore string       `yaml:"upgrades_to_ignore,omitempty" toml:"upgrades_to_ignore,omitempty"`
	Modules          []ModuleNode `yaml:"modules" toml:"modules"`
}

func cloneValues(values map[string]string) map[string]string {
	if values == nil {
		return nil
	}
	out := make(map[string]string, len(values))
	for key, value := range values {
		out[key] = value
	}
	return out
}
