package app

import (
	"context"

	"upgrade-editor/internal/adapters"
	"upgrade-editor/internal/core"
	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

type Service struct {
	Definitions     ports.PartDefinitionPort
	Crafts          ports.CraftPort
	TechTrees       ports.TechTreePort
	Watcher         ports.CraftWatcherPort
	Validator       core.DefinitionValidator
	NewHandler      func(tree types.TechTreeFile) ports.UpgradeHandlerPort
	NewPart         func(ctx context.Context, definition types.PartDefinition, handler ports.UpgradeHandlerPort) ports.PartPort
	MaxVerifyPasses int
}

func NewService() Service {
	return Service{
		Definitions: adapters.NewPartDefinitionFileAdapter(),
		Crafts:      adapters.NewCraftFileAdapter(),
		TechTrees:   adapters.NewTechTreeFileAdapter(),
		Watcher:     adapters.NewCraftWatcher(),
		Validator:   core.NewDefinitionValidator(),
		NewHandler: func(tree types.TechTreeFile) ports.UpgradeHandlerPort {
			return adapters.NewTechTreeHandler(tree)
		},
		NewPart: func(ctx context.Context, definition types.PartDefinition, handler ports.UpgradeHandlerPort) ports.PartPort {
			return adapters.NewLivePart(ctx, definition, handler)
		},
		MaxVerifyPasses: core.DefaultMaxVerifyPasses,
	}
}
