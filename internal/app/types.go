package app

import "upgrade-editor/internal/types"

// SessionRequest names the craft, tech tree and part instance an editing
// session runs against.
type SessionRequest struct {
	CraftPath    string
	TechTreePath string
	PartID       string
}

type CatalogRequest struct {
	SessionRequest
}

type CatalogResult struct {
	PartID    string
	PartName  string
	Entries   []types.CatalogEntry
	Disabled  []string
	Overrides types.Overrides
}

type ToggleRequest struct {
	SessionRequest
	Upgrade string
	Enabled bool
}

type OverrideRequest struct {
	SessionRequest
	Value bool
}

// EditResult reports the persisted state written back after an edit.
type EditResult struct {
	PartID           string
	DisabledUpgrades string
	Overrides        types.Overrides
	Entries          []types.CatalogEntry
}

type ResetRequest struct {
	SessionRequest
}

type InspectRequest struct {
	SessionRequest
}

type InspectResult struct {
	PartID   string
	PartName string
	Stats    types.PartStats
	Modules  []types.ModuleSnapshot
	Disabled []string
}

type WatchRequest struct {
	CraftPath    string
	TechTreePath string
}

// WatchEvent carries one part's catalog after the craft file changed.
type WatchEvent struct {
	Catalog CatalogResult
	Err     error
}
