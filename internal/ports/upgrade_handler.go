package ports

import "upgrade-editor/internal/types"

// UpgradeHandlerPort owns the enabled flag of every upgrade.
type UpgradeHandlerPort interface {
	IsUnlocked(name string) bool
	IsEnabled(name string) bool
	SetEnabled(name string, enabled bool)
	Metadata(name string) (types.UpgradeMetadata, bool)

	// SetAllEnabled forces IsEnabled to report true for every unlocked
	// upgrade while active.
	SetAllEnabled(enabled bool)
	AllEnabled() bool
}

type TechTreePort interface {
	LoadTechTree(path string) (types.TechTreeFile, error)
}
