package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"upgrade-editor/internal/core"
	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

// editingSession bundles an open core session with what is needed to
// write its result back into the craft.
type editingSession struct {
	craft     types.CraftFile
	partIndex int
	part      ports.PartPort
	session   *core.Session
}

func validateSessionRequest(req SessionRequest) error {
	if strings.TrimSpace(req.CraftPath) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("craft file path is required")
	}
	if strings.TrimSpace(req.TechTreePath) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("tech tree file path is required")
	}
	if strings.TrimSpace(req.PartID) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("part id is required")
	}
	return nil
}

func (s Service) openSession(ctx context.Context, req SessionRequest) (*editingSession, error) {
	if err := validateSessionRequest(req); err != nil {
		return nil, err
	}
	craft, err := s.Crafts.LoadCraft(req.CraftPath)
	if err != nil {
		return nil, err
	}
	tree, err := s.TechTrees.LoadTechTree(req.TechTreePath)
	if err != nil {
		return nil, err
	}
	return s.openCraftPart(ctx, craft, req.CraftPath, tree, req.PartID)
}

func (s Service) openCraftPart(ctx context.Context, craft types.CraftFile, craftPath string, tree types.TechTreeFile, partID string) (*editingSession, error) {
	index := craft.Part(partID)
	if index < 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("part not found on craft: %s", partID))
	}
	craftPart := craft.Parts[index]
	definitionPath := craftPart.Definition
	if !filepath.IsAbs(definitionPath) {
		definitionPath = filepath.Join(filepath.Dir(craftPath), definitionPath)
	}
	definition, err := s.Definitions.LoadDefinition(definitionPath)
	if err != nil {
		return nil, err
	}
	if err := s.Validator.ValidateDefinition(ctx, definition); err != nil {
		return nil, err
	}

	handler := s.NewHandler(tree)
	part := s.NewPart(ctx, definition, handler)
	session, err := core.OpenSession(ctx, core.SessionConfig{
		Part:     part,
		Handler:  handler,
		Baseline: core.CaptureBaseline(definition),
		Fields: types.PersistedFields{
			DisabledUpgrades: craftPart.DisabledUpgrades,
			UpgradesToIgnore: definition.UpgradesToIgnore,
		},
		Overrides:       types.Overrides{AlwaysEnable: craft.Settings.AlwaysEnable},
		MaxVerifyPasses: s.MaxVerifyPasses,
	})
	if err != nil {
		return nil, err
	}
	return &editingSession{craft: craft, partIndex: index, part: part, session: session}, nil
}

// save writes the flushed fields and the global override back to the
// craft file.
func (s Service) save(craftPath string, edit *editingSession, fields types.PersistedFields) (EditResult, error) {
	overrides := edit.session.Overrides()
	edit.craft.Parts[edit.partIndex].DisabledUpgrades = fields.DisabledUpgrades
	edit.craft.Settings.AlwaysEnable = overrides.AlwaysEnable
	if err := s.Crafts.SaveCraft(craftPath, edit.craft); err != nil {
		return EditResult{}, err
	}
	return EditResult{
		PartID:           edit.craft.Parts[edit.partIndex].ID,
		DisabledUpgrades: fields.DisabledUpgrades,
		Overrides:        overrides,
		Entries:          edit.session.Catalog(),
	}, nil
}
