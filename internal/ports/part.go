package ports

import (
	"context"

	"upgrade-editor/internal/types"
)

// PartPort is the live part being edited. The engine never constructs
// one; it only holds it for the duration of an editing session.
type PartPort interface {
	Name() string
	Modules() []ModulePort
	Stats() types.PartStats
}

// ModulePort is a dependent consumer of upgrades living on a part.
type ModulePort interface {
	Name() string
	DisplayName() string

	// DeclaredUpgrades lists every upgrade the module can consume,
	// regardless of unlock or enabled state.
	DeclaredUpgrades() []types.UpgradeDeclaration

	// ResetToBaseline re-initializes internal state ahead of a reload.
	ResetToBaseline()

	// LoadFrom reloads the module from a config node. Like the host,
	// loading runs the module's upgrade pass with the current enabled flags.
	LoadFrom(ctx context.Context, node types.ModuleNode)

	// FindUpgrades recomputes which declared upgrades currently apply.
	FindUpgrades()

	ApplyUpgrades(ctx context.Context)
	HasAppliedUpgrades() bool
	Snapshot() types.ModuleSnapshot
}

// ZeroDeltaOverrider is implemented by consumers that cache numeric
// deltas across reloads. Such a module gets one apply cycle from a node
// where the disabled upgrades carry a zero delta before the regular reset.
type ZeroDeltaOverrider interface {
	SupportsZeroDeltaOverride() bool
}
