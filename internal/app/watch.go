package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Watch reports every part's catalog once, then again after each change
// to the craft file, until ctx is cancelled.
func (s Service) Watch(ctx context.Context, req WatchRequest, emit func(WatchEvent)) error {
	if strings.TrimSpace(req.CraftPath) == "" || strings.TrimSpace(req.TechTreePath) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("craft and tech tree paths are required")
	}
	report := func(ctx context.Context) error {
		return s.reportCraft(ctx, req, emit)
	}
	if err := report(ctx); err != nil {
		return err
	}
	return s.Watcher.Watch(ctx, req.CraftPath, report)
}

func (s Service) reportCraft(ctx context.Context, req WatchRequest, emit func(WatchEvent)) error {
	craft, err := s.Crafts.LoadCraft(req.CraftPath)
	if err != nil {
		return err
	}
	tree, err := s.TechTrees.LoadTechTree(req.TechTreePath)
	if err != nil {
		return err
	}
	for _, part := range craft.Parts {
		edit, err := s.openCraftPart(ctx, craft, req.CraftPath, tree, part.ID)
		if err != nil {
			emit(WatchEvent{Catalog: CatalogResult{PartID: part.ID}, Err: err})
			continue
		}
		result := catalogResult(edit)
		if _, err := edit.session.Close(ctx); err != nil {
			log.Ctx(ctx).Debug().Err(err).Str("part", part.ID).Msg("session close failed")
		}
		emit(WatchEvent{Catalog: result})
	}
	return nil
}
