package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"upgrade-editor/internal/types"
)

type DefinitionValidator struct{}

func NewDefinitionValidator() DefinitionValidator {
	return DefinitionValidator{}
}

// ValidateDefinition checks a part definition before it becomes a
// session baseline. Upgrade names end up in comma-joined persisted
// lines, so they may not contain the separator.
func (v DefinitionValidator) ValidateDefinition(_ context.Context, definition types.PartDefinition) error {
	if strings.TrimSpace(definition.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("part name must not be empty")
	}
	for i, module := range definition.Modules {
		if strings.TrimSpace(module.Name) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("module %d has no name", i))
		}
		if err := validateModuleKind(module); err != nil {
			return err
		}
		if err := validateUpgradeNodes(module); err != nil {
			return err
		}
	}
	return nil
}

func validateModuleKind(module types.ModuleNode) error {
	switch module.Kind {
	case "", types.ModuleKindOverlay, types.ModuleKindStats:
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("module %s has unknown kind: %s", module.Name, module.Kind))
	}
}

func validateUpgradeNodes(module types.ModuleNode) error {
	seen := map[string]struct{}{}
	for _, upgrade := range module.Upgrades {
		name := upgrade.Name
		if strings.TrimSpace(name) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("module %s declares an upgrade without a name", module.Name))
		}
		if strings.ContainsRune(name, types.ListSeparator) || name == types.NoneSentinel {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid upgrade name: %s", name))
		}
		if _, ok := seen[name]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate upgrade %s in module %s", name, module.Name))
		}
		seen[name] = struct{}{}
	}
	return nil
}
