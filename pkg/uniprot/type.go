package uniprot

import (
	"time"

	"pdb-srv/pkg/fetch"
	"pdb-srv/pkg/log"
)

// UniprotConfig holds the configuration for the UniProt client.
type UniprotConfig struct {
	BaseURL string
	Timeout time.Duration
}

// uniprotImpl implements IUniprot.
type uniprotImpl struct {
	cfg     UniprotConfig
	fetcher fetch.IFetcher
	l       log.Logger
}

// entryResponse is the UniProtKB entry projection.
type entryResponse struct {
	PrimaryAccession   string `json:"primaryAccession"`
	ProteinDescription struct {
		RecommendedName struct {
			FullName struct {
				Value string `json:"value"`
			} `json:"fullName"`
		} `json:"recommendedName"`
	} `json:"proteinDescription"`
	Comments []comment `json:"comments"`
}

type comment struct {
	CommentType string `json:"commentType"`
	Texts       []struct {
		Value string `json:"value"`
	} `json:"texts"`
	Reaction *struct {
		Name string `json:"name"`
	} `json:"reaction,omitempty"`
}
