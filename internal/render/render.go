package render

import (
	"fmt"
	"strings"

	"pdb-srv/internal/model"
)

const notAvailable = "N/A"

// StructureSummary renders one entry with its entities and ligands as a
// plain-text report. Missing fields render as N/A; rendering never fails.
func StructureSummary(entry model.EntryMetadata, entities []model.PolymerEntity, ligands []model.Ligand) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PDB Entry: %s\n", orNA(entry.RcsbID))
	fmt.Fprintf(&b, "Title: %s\n", orNA(entry.Struct.Title))

	methods := make([]string, 0, len(entry.Exptl))
	for _, m := range entry.Exptl {
		if m.Method != "" {
			methods = append(methods, m.Method)
		}
	}
	fmt.Fprintf(&b, "Method: %s\n", orNA(strings.Join(methods, ", ")))

	if len(entry.EntryInfo.ResolutionCombined) > 0 {
		fmt.Fprintf(&b, "Resolution: %.2f Å\n", entry.EntryInfo.ResolutionCombined[0])
	} else {
		fmt.Fprintf(&b, "Resolution: %s\n", notAvailable)
	}

	if entry.EntryInfo.MolecularWeight > 0 {
		fmt.Fprintf(&b, "Molecular weight: %.1f kDa\n", entry.EntryInfo.MolecularWeight)
	}
	if kw := entry.StructKeywords; kw != nil && kw.PdbxKeywords != "" {
		fmt.Fprintf(&b, "Keywords: %s\n", kw.PdbxKeywords)
	}
	fmt.Fprintf(&b, "Deposited: %s\n", orNA(entry.AccessionInfo.DepositDate))
	fmt.Fprintf(&b, "Released: %s\n", orNA(entry.AccessionInfo.InitialReleaseDate))

	if c := entry.PrimaryCitation; c != nil && c.Title != "" {
		fmt.Fprintf(&b, "\nCitation: %s", c.Title)
		if c.JournalAbbrev != "" {
			fmt.Fprintf(&b, " (%s", c.JournalAbbrev)
			if c.Year > 0 {
				fmt.Fprintf(&b, ", %d", c.Year)
			}
			b.WriteString(")")
		}
		b.WriteString("\n")
		if c.DOI != "" {
			fmt.Fprintf(&b, "DOI: %s\n", c.DOI)
		}
	}

	if len(entities) > 0 {
		b.WriteString("\nPolymer entities:\n")
		for _, e := range entities {
			fmt.Fprintf(&b, "  [%s] %s", orNA(e.EntityID), orNA(e.Description))
			if e.SequenceLength > 0 {
				fmt.Fprintf(&b, " (%d residues)", e.SequenceLength)
			}
			b.WriteString("\n")
			if len(e.Organisms) > 0 {
				fmt.Fprintf(&b, "      Organism: %s\n", strings.Join(e.Organisms, ", "))
			}
			if len(e.UniprotIDs) > 0 {
				fmt.Fprintf(&b, "      UniProt: %s\n", strings.Join(e.UniprotIDs, ", "))
			}
		}
	}

	if len(ligands) > 0 {
		b.WriteString("\n")
		b.WriteString(LigandTable(ligands))
	}

	return b.String()
}

// LigandTable renders bound ligands as an aligned text table.
func LigandTable(ligands []model.Ligand) string {
	if len(ligands) == 0 {
		return "No ligands found.\n"
	}

	var b strings.Builder
	b.WriteString("Ligands:\n")
	for _, l := range ligands {
		fmt.Fprintf(&b, "  %-4s %s", orNA(l.CompID), orNA(l.Name))
		if l.Formula != "" {
			fmt.Fprintf(&b, " [%s]", l.Formula)
		}
		if len(l.Chains) > 0 {
			fmt.Fprintf(&b, " chains %s", strings.Join(l.Chains, ","))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// BindingSiteList renders binding sites one per block, noting curated notes.
func BindingSiteList(entryID string, sites []model.BindingSite) string {
	if len(sites) == 0 {
		return fmt.Sprintf("No binding site information found for %s.\n", entryID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Binding sites for %s:\n", entryID)
	for _, s := range sites {
		fmt.Fprintf(&b, "  %s", orNA(s.Label))
		if s.CompID != "" {
			fmt.Fprintf(&b, " (ligand %s)", s.CompID)
		}
		if len(s.Chains) > 0 {
			fmt.Fprintf(&b, " chains %s", strings.Join(s.Chains, ","))
		}
		b.WriteString("\n")
		if s.Details != "" {
			fmt.Fprintf(&b, "    %s\n", s.Details)
		}
		if s.Source == model.BindingSiteSourceCurated {
			b.WriteString("    (curated annotation)\n")
		}
	}
	return b.String()
}

// UniprotCommentsText renders functional annotations as titled sections.
func UniprotCommentsText(c model.UniprotComments) string {
	var b strings.Builder
	fmt.Fprintf(&b, "UniProt %s", orNA(c.Accession))
	if c.ProteinName != "" {
		fmt.Fprintf(&b, " - %s", c.ProteinName)
	}
	b.WriteString("\n")

	section(&b, "Function", c.Function)
	section(&b, "Catalytic activity", c.CatalyticActivity)
	section(&b, "Subunit", c.Subunit)
	section(&b, "Pathway", c.Pathway)

	if len(c.Function) == 0 && len(c.CatalyticActivity) == 0 &&
		len(c.Subunit) == 0 && len(c.Pathway) == 0 {
		b.WriteString("No functional annotations available.\n")
	}
	return b.String()
}

// SearchResults renders search hits with scores and titles.
func SearchResults(query string, hits []model.SearchHit, total int) string {
	if len(hits) == 0 {
		return fmt.Sprintf("No structures found for %q.\n", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d structures for %q (showing %d):\n", total, query, len(hits))
	for i, h := range hits {
		fmt.Fprintf(&b, "%2d. %s (score %.2f)", i+1, h.Identifier, h.Score)
		if h.Title != "" {
			fmt.Fprintf(&b, " - %s", h.Title)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func section(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, line := range lines {
		fmt.Fprintf(b, "  %s\n", line)
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}
