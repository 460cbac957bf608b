package rcsb

import (
	"encoding/json"
	"time"

	"pdb-srv/pkg/fetch"
	"pdb-srv/pkg/log"
)

// RCSBConfig holds the configuration for the RCSB client.
type RCSBConfig struct {
	DataURL    string
	GraphQLURL string
	SearchURL  string
	Timeout    time.Duration
}

// rcsbImpl implements IRCSB.
type rcsbImpl struct {
	cfg     RCSBConfig
	fetcher fetch.IFetcher
	l       log.Logger
}

// graphqlRequest is the request body for the GraphQL endpoint.
type graphqlRequest struct {
	Query string `json:"query"`
}

// graphqlEnvelope is the response envelope; only the entry field is used.
type graphqlEnvelope struct {
	Data struct {
		Entry json.RawMessage `json:"entry"`
	} `json:"data"`
}

// entryGraph is the GraphQL entry projection for entity lookups.
type entryGraph struct {
	PolymerEntities    []polymerEntityGraph    `json:"polymer_entities"`
	NonpolymerEntities []nonpolymerEntityGraph `json:"nonpolymer_entities"`
}

type polymerEntityGraph struct {
	Identifiers struct {
		EntityID   string   `json:"entity_id"`
		UniprotIDs []string `json:"uniprot_ids"`
	} `json:"rcsb_polymer_entity_container_identifiers"`
	Entity struct {
		Description string `json:"pdbx_description"`
	} `json:"rcsb_polymer_entity"`
	EntityPoly struct {
		PolymerType    string `json:"rcsb_entity_polymer_type"`
		SequenceLength int    `json:"rcsb_sample_sequence_length"`
	} `json:"entity_poly"`
	SourceOrganisms []struct {
		ScientificName string `json:"scientific_name"`
	} `json:"rcsb_entity_source_organism"`
}

type nonpolymerEntityGraph struct {
	Identifiers struct {
		CompID      string   `json:"comp_id"`
		AuthAsymIDs []string `json:"auth_asym_ids"`
	} `json:"rcsb_nonpolymer_entity_container_identifiers"`
	Entity struct {
		Description string `json:"pdbx_description"`
	} `json:"rcsb_nonpolymer_entity"`
	Comp struct {
		ChemComp struct {
			ID            string  `json:"id"`
			Name          string  `json:"name"`
			Formula       string  `json:"formula"`
			FormulaWeight float64 `json:"formula_weight"`
		} `json:"chem_comp"`
	} `json:"nonpolymer_comp"`
}

// searchRequest is the request body for the Search API full-text query.
type searchRequest struct {
	Query          searchQuery    `json:"query"`
	ReturnType     string         `json:"return_type"`
	RequestOptions requestOptions `json:"request_options"`
}

type searchQuery struct {
	Type       string           `json:"type"`
	Service    string           `json:"service"`
	Parameters searchParameters `json:"parameters"`
}

type searchParameters struct {
	Value string `json:"value"`
}

type requestOptions struct {
	Paginate paginate `json:"paginate"`
}

type paginate struct {
	Start int `json:"start"`
	Rows  int `json:"rows"`
}

// searchResponse is the Search API response projection.
type searchResponse struct {
	ResultSet []struct {
		Identifier string  `json:"identifier"`
		Score      float64 `json:"score"`
	} `json:"result_set"`
	TotalCount int `json:"total_count"`
}
