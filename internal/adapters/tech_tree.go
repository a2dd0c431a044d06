package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

// TechTreeHandler is an in-memory upgrade handler seeded from a tech tree
// file. Unlocked upgrades start enabled; unknown names are locked.
type TechTreeHandler struct {
	upgrades   map[string]types.TechTreeUpgrade
	enabled    map[string]bool
	allEnabled bool
}

func NewTechTreeHandler(tree types.TechTreeFile) *TechTreeHandler {
	h := &TechTreeHandler{
		upgrades: map[string]types.TechTreeUpgrade{},
		enabled:  map[string]bool{},
	}
	for _, upgrade := range tree.Upgrades {
		h.upgrades[upgrade.Name] = upgrade
		h.enabled[upgrade.Name] = upgrade.Unlocked
	}
	return h
}

func (h *TechTreeHandler) IsUnlocked(name string) bool {
	return h.upgrades[name].Unlocked
}

func (h *TechTreeHandler) IsEnabled(name string) bool {
	if h.allEnabled && h.IsUnlocked(name) {
		return true
	}
	return h.enabled[name]
}

func (h *TechTreeHandler) SetEnabled(name string, enabled bool) {
	h.enabled[name] = enabled
}

func (h *TechTreeHandler) Metadata(name string) (types.UpgradeMetadata, bool) {
	upgrade, ok := h.upgrades[name]
	if !ok {
		return types.UpgradeMetadata{}, false
	}
	return types.UpgradeMetadata{Title: upgrade.Title, Description: upgrade.Description}, true
}

func (h *TechTreeHandler) SetAllEnabled(enabled bool) {
	h.allEnabled = enabled
}

func (h *TechTreeHandler) AllEnabled() bool {
	return h.allEnabled
}

var _ ports.UpgradeHandlerPort = (*TechTreeHandler)(nil)

type TechTreeFileAdapter struct{}

func NewTechTreeFileAdapter() TechTreeFileAdapter {
	return TechTreeFileAdapter{}
}

func (a TechTreeFileAdapter) LoadTechTree(path string) (types.TechTreeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.TechTreeFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("tech tree file not found").
			WithCause(err)
	}
	var tree types.TechTreeFile
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return types.TechTreeFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse tech tree yaml").
			WithCause(err)
	}
	return tree, nil
}
