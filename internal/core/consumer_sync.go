package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

// ConsumerSync returns modules to their pre-upgrade state. Upgrades are
// value overlays with no undo, so disabling one means reloading every
// affected module from the baseline and letting the survivors reapply.
type ConsumerSync struct {
	Handler ports.UpgradeHandlerPort
}

func NewConsumerSync(handler ports.UpgradeHandlerPort) ConsumerSync {
	return ConsumerSync{Handler: handler}
}

// ResetModules reloads, from the baseline, every module that declares at
// least one catalog upgrade. Modules caching numeric deltas get their
// zero-delta correction first.
func (c ConsumerSync) ResetModules(ctx context.Context, part ports.PartPort, baseline Baseline, catalog []types.CatalogUpgrade, disabled NameSet) {
	if part == nil {
		return
	}
	c.CorrectCachedDeltas(ctx, part, baseline, catalog, disabled)

	names := catalogNames(catalog)
	for index, module := range part.Modules() {
		if !declaresAny(module, names) {
			continue
		}
		node, ok := baselineNode(baseline, index, module)
		if !ok {
			log.Ctx(ctx).Debug().
				Str("module", module.Name()).
				Int("index", index).
				Msg("module has no matching baseline node, skipping reset")
			continue
		}
		module.ResetToBaseline()
		module.LoadFrom(ctx, node)
	}
}

// CorrectCachedDeltas pushes a zero-delta copy of every disabled upgrade
// through one apply cycle of each module that opts in, so a cached delta
// cannot outlive a full disable.
func (c ConsumerSync) CorrectCachedDeltas(ctx context.Context, part ports.PartPort, baseline Baseline, catalog []types.CatalogUpgrade, disabled NameSet) {
	if part == nil || disabled.Len() == 0 {
		return
	}
	for index, module := range part.Modules() {
		overrider, ok := module.(ports.ZeroDeltaOverrider)
		if !ok || !overrider.SupportsZeroDeltaOverride() {
			continue
		}
		node, ok := baselineNode(baseline, index, module)
		if !ok {
			continue
		}
		var names []string
		for _, upgrade := range catalog {
			if !disabled.Has(upgrade.Name) {
				continue
			}
			if _, declared := node.Upgrade(upgrade.Name); declared {
				names = append(names, upgrade.Name)
			}
		}
		if len(names) == 0 {
			continue
		}
		c.pushZeroDelta(ctx, module, node, names)
	}
}

func (c ConsumerSync) pushZeroDelta(ctx context.Context, module ports.ModulePort, node types.ModuleNode, names []string) {
	override := zeroDeltaNode(node, names)
	previous := make(map[string]bool, len(names))
	for _, name := range names {
		previous[name] = c.Handler.IsEnabled(name)
		c.Handler.SetEnabled(name, true)
	}
	module.LoadFrom(ctx, override)
	module.FindUpgrades()
	module.ApplyUpgrades(ctx)
	for _, name := range names {
		c.Handler.SetEnabled(name, previous[name])
	}
	module.LoadFrom(ctx, node)
	log.Ctx(ctx).Debug().
		Str("module", module.Name()).
		Strs("upgrades", names).
		Msg("zero-delta override applied")
}

func zeroDeltaNode(node types.ModuleNode, names []string) types.ModuleNode {
	override := node.Clone()
	zeroed := NewNameSet(names...)
	for i := range override.Upgrades {
		if zeroed.Has(override.Upgrades[i].Name) {
			override.Upgrades[i].Stats = &types.PartStats{}
		}
	}
	return override
}

// baselineNode finds the baseline node for the module at index. A node
// for a different module, or one missing an upgrade the live module
// declares, cannot serve as a reset target.
func baselineNode(baseline Baseline, index int, module ports.ModulePort) (types.ModuleNode, bool) {
	node, ok := baseline.Module(index)
	if !ok || node.Name != module.Name() {
		return types.ModuleNode{}, false
	}
	for _, declared := range module.DeclaredUpgrades() {
		if _, found := node.Upgrade(declared.Name); !found {
			return types.ModuleNode{}, false
		}
	}
	return node, true
}

func declaresAny(module ports.ModulePort, names NameSet) bool {
	for _, declared := range module.DeclaredUpgrades() {
		if names.Has(declared.Name) {
			return true
		}
	}
	return false
}
