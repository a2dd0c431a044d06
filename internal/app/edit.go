package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Toggle(ctx context.Context, req ToggleRequest) (EditResult, error) {
	if strings.TrimSpace(req.Upgrade) == "" {
		return EditResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("upgrade name is required")
	}
	edit, err := s.openSession(ctx, req.SessionRequest)
	if err != nil {
		return EditResult{}, err
	}
	if err := edit.session.Toggle(ctx, req.Upgrade, req.Enabled); err != nil {
		return EditResult{}, err
	}
	return s.closeAndSave(ctx, req.CraftPath, edit)
}

func (s Service) EnableAll(ctx context.Context, req OverrideRequest) (EditResult, error) {
	edit, err := s.openSession(ctx, req.SessionRequest)
	if err != nil {
		return EditResult{}, err
	}
	if err := edit.session.SetEnableAll(ctx, req.Value); err != nil {
		return EditResult{}, err
	}
	return s.closeAndSave(ctx, req.CraftPath, edit)
}

func (s Service) AlwaysEnable(ctx context.Context, req OverrideRequest) (EditResult, error) {
	edit, err := s.openSession(ctx, req.SessionRequest)
	if err != nil {
		return EditResult{}, err
	}
	if err := edit.session.SetAlwaysEnable(ctx, req.Value); err != nil {
		return EditResult{}, err
	}
	return s.closeAndSave(ctx, req.CraftPath, edit)
}

// Reset re-enables everything the user disabled on the part and ends the
// session with the persisted line set to the sentinel.
func (s Service) Reset(ctx context.Context, req ResetRequest) (EditResult, error) {
	edit, err := s.openSession(ctx, req.SessionRequest)
	if err != nil {
		return EditResult{}, err
	}
	fields, err := edit.session.ResetAndClose(ctx)
	if err != nil {
		return EditResult{}, err
	}
	return s.save(req.CraftPath, edit, fields)
}

func (s Service) closeAndSave(ctx context.Context, craftPath string, edit *editingSession) (EditResult, error) {
	fields, err := edit.session.Close(ctx)
	if err != nil {
		return EditResult{}, err
	}
	return s.save(craftPath, edit, fields)
}
