package app

import "context"

// Inspect hydrates a part and reports its live module state and stats.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	edit, err := s.openSession(ctx, req.SessionRequest)
	if err != nil {
		return InspectResult{}, err
	}
	result := InspectResult{
		PartID:   edit.craft.Parts[edit.partIndex].ID,
		PartName: edit.part.Name(),
		Stats:    edit.part.Stats(),
		Modules:  edit.session.Modules(),
		Disabled: edit.session.Disabled(),
	}
	if _, err := edit.session.Close(ctx); err != nil {
		return InspectResult{}, err
	}
	return result, nil
}
