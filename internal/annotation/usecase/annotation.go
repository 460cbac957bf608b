package usecase

import (
	"context"
	"errors"
	"fmt"

	"pdb-srv/internal/annotation"
	"pdb-srv/pkg/rcsb"
	"pdb-srv/pkg/uniprot"
)

// GetBindingSites - Ligand binding sites for one entry
// Flow: validate ID → sites from upstream → curated fallback when empty
func (uc *implUseCase) GetBindingSites(ctx context.Context, input annotation.GetBindingSitesInput) (annotation.GetBindingSitesOutput, error) {
	if len(input.EntryID) != annotation.EntryIDLength {
		return annotation.GetBindingSitesOutput{}, fmt.Errorf("%w: %q", annotation.ErrInvalidEntryID, input.EntryID)
	}

	// Step 1: API-derived sites
	sites, err := uc.rcsb.GetBindingSites(ctx, input.EntryID)
	if err != nil && !errors.Is(err, rcsb.ErrNoData) {
		uc.l.Errorf(ctx, "annotation.usecase.GetBindingSites: site lookup failed: %v", err)
		return annotation.GetBindingSitesOutput{}, fmt.Errorf("%w: %s", annotation.ErrEntryNotFound, input.EntryID)
	}

	// Step 2: Curated notes fill in when the API has nothing
	if len(sites) == 0 && uc.knowledgeRepo != nil {
		curated, repoErr := uc.knowledgeRepo.ListActiveSiteNotes(ctx, input.EntryID)
		if repoErr != nil {
			uc.l.Warnf(ctx, "annotation.usecase.GetBindingSites: curated lookup failed for %s: %v", input.EntryID, repoErr)
		} else {
			sites = curated
		}
	}

	return annotation.GetBindingSitesOutput{Sites: sites}, nil
}

// GetUniprotComments - Functional annotation texts for one accession
func (uc *implUseCase) GetUniprotComments(ctx context.Context, input annotation.GetUniprotCommentsInput) (annotation.GetUniprotCommentsOutput, error) {
	if input.Accession == "" {
		return annotation.GetUniprotCommentsOutput{}, fmt.Errorf("%w: %q", annotation.ErrInvalidAccession, input.Accession)
	}

	comments, err := uc.uniprot.GetComments(ctx, input.Accession)
	if err != nil {
		if errors.Is(err, uniprot.ErrNoData) {
			return annotation.GetUniprotCommentsOutput{}, fmt.Errorf("%w: %s", annotation.ErrAccessionNotFound, input.Accession)
		}
		uc.l.Errorf(ctx, "annotation.usecase.GetUniprotComments: comment lookup failed: %v", err)
		return annotation.GetUniprotCommentsOutput{}, fmt.Errorf("%w: %s", annotation.ErrAccessionNotFound, input.Accession)
	}

	return annotation.GetUniprotCommentsOutput{Comments: *comments}, nil
}
