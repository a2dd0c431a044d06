package core

import (
	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

// BuildCatalog lists the unique upgrades visible for a part. The first
// module declaring a name fixes its position; later declarations only add
// their module index. Ignored names never show. A name the user disabled
// stays visible even when its unlock state would hide it.
func BuildCatalog(part ports.PartPort, ignore NameSet, disabled NameSet, handler ports.UpgradeHandlerPort) []types.CatalogUpgrade {
	if part == nil {
		return nil
	}
	var catalog []types.CatalogUpgrade
	positions := map[string]int{}
	seen := map[string]struct{}{}
	for moduleIndex, module := range part.Modules() {
		for _, declared := range module.DeclaredUpgrades() {
			if pos, ok := positions[declared.Name]; ok {
				catalog[pos].Modules = appendUnique(catalog[pos].Modules, moduleIndex)
				continue
			}
			if _, ok := seen[declared.Name]; ok {
				continue
			}
			seen[declared.Name] = struct{}{}
			if ignore.Has(declared.Name) {
				continue
			}
			if !handler.IsUnlocked(declared.Name) && !disabled.Has(declared.Name) {
				continue
			}
			positions[declared.Name] = len(catalog)
			catalog = append(catalog, types.CatalogUpgrade{
				Name:    declared.Name,
				Modules: []int{moduleIndex},
			})
		}
	}
	return catalog
}

func catalogNames(catalog []types.CatalogUpgrade) NameSet {
	names := NewNameSet()
	for _, upgrade := range catalog {
		names.Add(upgrade.Name)
	}
	return names
}

func declares(module ports.ModulePort, name string) bool {
	for _, declared := range module.DeclaredUpgrades() {
		if declared.Name == name {
			return true
		}
	}
	return false
}

func appendUnique(values []int, value int) []int {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
