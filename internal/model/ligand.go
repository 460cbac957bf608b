package model

// Ligand is one non-polymer chemical component bound in an entry.
type Ligand struct {
	CompID        string   `json:"comp_id"`
	Name          string   `json:"name,omitempty"`
	Formula       string   `json:"formula,omitempty"`
	FormulaWeight float64  `json:"formula_weight,omitempty"`
	Chains        []string `json:"chains,omitempty"`
}

// BindingSiteSource tags where a binding-site record came from.
type BindingSiteSource string

const (
	// BindingSiteSourceAPI marks sites inferred from upstream ligand data.
	BindingSiteSourceAPI BindingSiteSource = "api"
	// BindingSiteSourceCurated marks sites from the curated knowledge table.
	BindingSiteSourceCurated BindingSiteSource = "curated"
)

// BindingSite describes one ligand binding site or active-site annotation.
type BindingSite struct {
	Label   string            `json:"label"`
	CompID  string            `json:"comp_id,omitempty"`
	Chains  []string          `json:"chains,omitempty"`
	Details string            `json:"details,omitempty"`
	Source  BindingSiteSource `json:"source"`
}
