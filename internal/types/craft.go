package types

// CraftSettings persists the process-wide override between runs. The
// soft enable-all mode is per session and is not stored.
type CraftSettings struct {
	AlwaysEnable bool `yaml:"always_enable"`
}

// CraftPart is one part instance on a craft. Definition is resolved
// relative to the craft file.
type CraftPart struct {
	ID               string `yaml:"id"`
	Definition       string `yaml:"definition"`
	DisabledUpgrades string `yaml:"disabled_upgrades,omitempty"`
}

// CraftFile is the saved craft holding every part's persisted fields.
type CraftFile struct {
	Name     string        `yaml:"name"`
	Settings CraftSettings `yaml:"settings"`
	Parts    []CraftPart   `yaml:"parts"`
}

// Part returns the index of the part with the given instance id, or -1.
func (c CraftFile) Part(id string) int {
	for i, part := range c.Parts {
		if part.ID == id {
			return i
		}
	}
	return -1
}
