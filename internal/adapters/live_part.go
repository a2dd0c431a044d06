package adapters

import (
	"context"

	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

// LivePart is an in-memory part instance built the way the host builds
// one: every module loaded from the definition with the handler's
// current enabled flags already applied.
type LivePart struct {
	name    string
	stats   types.PartStats
	modules []ports.ModulePort
}

func NewLivePart(ctx context.Context, definition types.PartDefinition, handler ports.UpgradeHandlerPort) *LivePart {
	part := &LivePart{name: definition.Name, stats: definition.Stats}
	for _, node := range definition.Modules {
		var module ports.ModulePort
		switch node.Kind {
		case types.ModuleKindStats:
			module = NewStatsModule(node, handler, part, definition.Stats)
		default:
			module = NewOverlayModule(node, handler)
		}
		module.LoadFrom(ctx, node)
		part.modules = append(part.modules, module)
	}
	return part
}

func (p *LivePart) Name() string {
	return p.name
}

func (p *LivePart) Modules() []ports.ModulePort {
	return p.modules
}

func (p *LivePart) Stats() types.PartStats {
	return p.stats
}

func (p *LivePart) setStats(stats types.PartStats) {
	p.stats = stats
}
