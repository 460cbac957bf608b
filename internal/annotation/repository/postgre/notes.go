package postgre

import (
	"context"
	"fmt"

	"pdb-srv/internal/annotation/repository"
	"pdb-srv/internal/model"
)

// ListActiveSiteNotes - Curated active-site annotations for one entry
func (r *implRepository) ListActiveSiteNotes(ctx context.Context, entryID string) ([]model.BindingSite, error) {
	query := `
		SELECT site_label, description
		FROM active_site_notes
		WHERE entry_id = $1
		ORDER BY site_label
	`

	rows, err := r.db.QueryContext(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSiteNotes: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var sites []model.BindingSite
	for rows.Next() {
		var site model.BindingSite
		if err := rows.Scan(&site.Label, &site.Details); err != nil {
			return nil, fmt.Errorf("%w: ListActiveSiteNotes scan: %v", repository.ErrFailedToList, err)
		}
		site.Source = model.BindingSiteSourceCurated
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveSiteNotes rows: %v", repository.ErrFailedToList, err)
	}

	return sites, nil
}
