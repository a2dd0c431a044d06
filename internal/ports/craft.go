package ports

import (
	"context"

	"upgrade-editor/internal/types"
)

type PartDefinitionPort interface {
	LoadDefinition(path string) (types.PartDefinition, error)
}

type CraftPort interface {
	LoadCraft(path string) (types.CraftFile, error)
	SaveCraft(path string, craft types.CraftFile) error
}

type CraftWatcherPort interface {
	// Watch blocks until ctx is done, calling onChange after every change
	// to the craft file.
	Watch(ctx context.Context, path string, onChange func(ctx context.Context) error) error
}
