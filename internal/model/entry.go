package model

// EntryMetadata is the core metadata for one PDB entry, decoded from the
// RCSB Data API. The salvage shape {"struct":{"title":...}} produced by the
// fetcher decodes into the same type with only Struct.Title set.
type EntryMetadata struct {
	RcsbID          string          `json:"rcsb_id"`
	Struct          EntryStruct     `json:"struct"`
	Exptl           []ExptlMethod   `json:"exptl,omitempty"`
	EntryInfo       EntryInfo       `json:"rcsb_entry_info"`
	AccessionInfo   AccessionInfo   `json:"rcsb_accession_info"`
	PrimaryCitation *Citation       `json:"rcsb_primary_citation,omitempty"`
	StructKeywords  *StructKeywords `json:"struct_keywords,omitempty"`
}

// EntryStruct holds the entry title.
type EntryStruct struct {
	Title string `json:"title"`
}

// ExptlMethod names one experimental method used for the structure.
type ExptlMethod struct {
	Method string `json:"method"`
}

// EntryInfo summarizes entry-level counts and resolution.
type EntryInfo struct {
	ResolutionCombined        []float64 `json:"resolution_combined,omitempty"`
	MolecularWeight           float64   `json:"molecular_weight,omitempty"`
	PolymerEntityCountProtein int       `json:"polymer_entity_count_protein,omitempty"`
	DepositedNonpolymerCount  int       `json:"deposited_nonpolymer_entity_instance_count,omitempty"`
}

// AccessionInfo holds deposition and release dates.
type AccessionInfo struct {
	DepositDate        string `json:"deposit_date,omitempty"`
	InitialReleaseDate string `json:"initial_release_date,omitempty"`
}

// Citation is the primary citation of an entry.
type Citation struct {
	Title         string   `json:"title,omitempty"`
	Authors       []string `json:"rcsb_authors,omitempty"`
	JournalAbbrev string   `json:"rcsb_journal_abbrev,omitempty"`
	Year          int      `json:"year,omitempty"`
	DOI           string   `json:"pdbx_database_id_doi,omitempty"`
}

// StructKeywords holds the curated keyword string for an entry.
type StructKeywords struct {
	PdbxKeywords string `json:"pdbx_keywords,omitempty"`
}
