package types

// UpgradeMetadata is what the upgrade handler knows about an upgrade.
type UpgradeMetadata struct {
	Title       string
	Description string
}

// UpgradeDeclaration is one upgrade a module says it can consume.
type UpgradeDeclaration struct {
	Name        string
	Description string
}

// CatalogUpgrade is a de-duplicated catalog item together with the
// indices of every module on the part that declares it.
type CatalogUpgrade struct {
	Name    string
	Modules []int
}

// CatalogEntry is the per-upgrade view handed to the UI.
type CatalogEntry struct {
	Name             string
	Title            string
	Description      string
	AffectedModules  []string
	CurrentlyEnabled bool
}

// Overrides are the two global override modes, read once when a session
// starts.
type Overrides struct {
	EnableAll    bool
	AlwaysEnable bool
}

// PersistedFields are the opaque strings owned by a part's save data.
type PersistedFields struct {
	DisabledUpgrades string
	UpgradesToIgnore string
}

// ModuleSnapshot describes a module's live state for inspection.
type ModuleSnapshot struct {
	Name            string
	DisplayName     string
	Fields          map[string]string
	AppliedUpgrades []string
}

// TechTreeUpgrade is one upgrade entry in the tech tree file.
type TechTreeUpgrade struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Unlocked    bool   `yaml:"unlocked"`
}

type TechTreeFile struct {
	Upgrades []TechTreeUpgrade `yaml:"upgrades"`
}
