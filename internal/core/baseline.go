package core

import "upgrade-editor/internal/types"

// Baseline is the per-session snapshot of a part definition taken before
// any upgrade applied. Modules are addressed by their index on the part.
// Every accessor hands out copies, so the snapshot itself never changes.
type Baseline struct {
	name    string
	stats   types.PartStats
	modules []types.ModuleNode
}

func CaptureBaseline(definition types.PartDefinition) Baseline {
	modules := make([]types.ModuleNode, len(definition.Modules))
	for i, module := range definition.Modules {
		modules[i] = module.Clone()
	}
	return Baseline{name: definition.Name, stats: definition.Stats, modules: modules}
}

func (b Baseline) Name() string {
	return b.name
}

func (b Baseline) Stats() types.PartStats {
	return b.stats
}

func (b Baseline) Len() int {
	return len(b.modules)
}

func (b Baseline) Module(index int) (types.ModuleNode, bool) {
	if index < 0 || index >= len(b.modules) {
		return types.ModuleNode{}, false
	}
	return b.modules[index].Clone(), true
}
