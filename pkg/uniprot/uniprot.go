package uniprot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pdb-srv/internal/model"
	"pdb-srv/pkg/fetch"
)

// DefaultBaseURL is the UniProtKB REST base.
const DefaultBaseURL = "https://rest.uniprot.org/uniprotkb"

// ErrNoData is returned when the upstream yields nothing usable.
var ErrNoData = errors.New("uniprot: no data available")

// GetComments fetches an entry and extracts its functional comment sections.
func (u *uniprotImpl) GetComments(ctx context.Context, accession string) (*model.UniprotComments, error) {
	url := fmt.Sprintf("%s/%s.json", u.cfg.BaseURL, accession)
	raw := u.fetcher.Fetch(ctx, fetch.Request{URL: url, Timeout: u.cfg.Timeout})
	if raw == nil {
		return nil, ErrNoData
	}

	var entry entryResponse
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("uniprot: failed to unmarshal entry %s: %w", accession, err)
	}

	comments := &model.UniprotComments{
		Accession:   entry.PrimaryAccession,
		ProteinName: entry.ProteinDescription.RecommendedName.FullName.Value,
	}
	if comments.Accession == "" {
		comments.Accession = accession
	}

	for _, c := range entry.Comments {
		switch c.CommentType {
		case "FUNCTION":
			comments.Function = append(comments.Function, textValues(c)...)
		case "CATALYTIC ACTIVITY":
			if c.Reaction != nil && c.Reaction.Name != "" {
				comments.CatalyticActivity = append(comments.CatalyticActivity, c.Reaction.Name)
			}
			comments.CatalyticActivity = append(comments.CatalyticActivity, textValues(c)...)
		case "SUBUNIT":
			comments.Subunit = append(comments.Subunit, textValues(c)...)
		case "PATHWAY":
			comments.Pathway = append(comments.Pathway, textValues(c)...)
		}
	}
	return comments, nil
}

func textValues(c comment) []string {
	values := make([]string, 0, len(c.Texts))
	for _, t := range c.Texts {
		if t.Value != "" {
			values = append(values, t.Value)
		}
	}
	return values
}
