package app

import "context"

// Catalog opens a read-only session and reports the part's upgrades. The
// craft file is not rewritten.
func (s Service) Catalog(ctx context.Context, req CatalogRequest) (CatalogResult, error) {
	edit, err := s.openSession(ctx, req.SessionRequest)
	if err != nil {
		return CatalogResult{}, err
	}
	result := catalogResult(edit)
	if _, err := edit.session.Close(ctx); err != nil {
		return CatalogResult{}, err
	}
	return result, nil
}

func catalogResult(edit *editingSession) CatalogResult {
	return CatalogResult{
		PartID:    edit.craft.Parts[edit.partIndex].ID,
		PartName:  edit.part.Name(),
		Entries:   edit.session.Catalog(),
		Disabled:  edit.session.Disabled(),
		Overrides: edit.session.Overrides(),
	}
}
