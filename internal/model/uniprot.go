package model

// UniprotComments holds the functional annotation texts for one UniProtKB
// accession.
type UniprotComments struct {
	Accession         string   `json:"accession"`
	ProteinName       string   `json:"protein_name,omitempty"`
	Function          []string `json:"function,omitempty"`
	CatalyticActivity []string `json:"catalytic_activity,omitempty"`
	Subunit           []string `json:"subunit,omitempty"`
	Pathway           []string `json:"pathway,omitempty"`
}
