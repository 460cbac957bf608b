package rcsb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"pdb-srv/internal/model"
	"pdb-srv/pkg/fetch"
)

// queryEntry runs a GraphQL query against the entry for entryID and returns
// the decoded entry projection.
func (r *rcsbImpl) queryEntry(ctx context.Context, entryID, fields string) (*entryGraph, error) {
	query := fmt.Sprintf(`{ entry(entry_id:%q) { %s } }`, entryID, fields)
	raw := r.fetcher.Fetch(ctx, fetch.Request{
		URL:     r.cfg.GraphQLURL,
		Method:  http.MethodPost,
		Body:    graphqlRequest{Query: query},
		Timeout: r.cfg.Timeout,
	})
	if raw == nil {
		return nil, ErrNoData
	}

	var envelope graphqlEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("rcsb: failed to unmarshal graphql reply for %s: %w", entryID, err)
	}
	entry := bytes.TrimSpace(envelope.Data.Entry)
	if len(entry) == 0 || bytes.Equal(entry, []byte("null")) {
		return nil, ErrNoData
	}

	var graph entryGraph
	if err := json.Unmarshal(entry, &graph); err != nil {
		return nil, fmt.Errorf("rcsb: failed to unmarshal entry projection for %s: %w", entryID, err)
	}
	return &graph, nil
}

const polymerEntityFields = `polymer_entities {
		rcsb_polymer_entity_container_identifiers { entity_id uniprot_ids }
		rcsb_polymer_entity { pdbx_description }
		entity_poly { rcsb_entity_polymer_type rcsb_sample_sequence_length }
		rcsb_entity_source_organism { scientific_name }
	}`

// GetPolymerEntities fetches the polymer entities of an entry via GraphQL.
func (r *rcsbImpl) GetPolymerEntities(ctx context.Context, entryID string) ([]model.PolymerEntity, error) {
	graph, err := r.queryEntry(ctx, entryID, polymerEntityFields)
	if err != nil {
		return nil, err
	}

	entities := make([]model.PolymerEntity, 0, len(graph.PolymerEntities))
	for _, pe := range graph.PolymerEntities {
		entity := model.PolymerEntity{
			EntityID:       pe.Identifiers.EntityID,
			Description:    pe.Entity.Description,
			Type:           pe.EntityPoly.PolymerType,
			SequenceLength: pe.EntityPoly.SequenceLength,
			UniprotIDs:     pe.Identifiers.UniprotIDs,
		}
		for _, org := range pe.SourceOrganisms {
			if org.ScientificName != "" {
				entity.Organisms = append(entity.Organisms, org.ScientificName)
			}
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

const nonpolymerEntityFields = `nonpolymer_entities {
		rcsb_nonpolymer_entity_container_identifiers { comp_id auth_asym_ids }
		rcsb_nonpolymer_entity { pdbx_description }
		nonpolymer_comp { chem_comp { id name formula formula_weight } }
	}`

// GetLigands fetches the non-polymer components of an entry via GraphQL.
func (r *rcsbImpl) GetLigands(ctx context.Context, entryID string) ([]model.Ligand, error) {
	graph, err := r.queryEntry(ctx, entryID, nonpolymerEntityFields)
	if err != nil {
		return nil, err
	}

	ligands := make([]model.Ligand, 0, len(graph.NonpolymerEntities))
	for _, ne := range graph.NonpolymerEntities {
		ligand := model.Ligand{
			CompID:        ne.Identifiers.CompID,
			Name:          ne.Comp.ChemComp.Name,
			Formula:       ne.Comp.ChemComp.Formula,
			FormulaWeight: ne.Comp.ChemComp.FormulaWeight,
			Chains:        ne.Identifiers.AuthAsymIDs,
		}
		if ligand.CompID == "" {
			ligand.CompID = ne.Comp.ChemComp.ID
		}
		if ligand.Name == "" {
			ligand.Name = ne.Entity.Description
		}
		ligands = append(ligands, ligand)
	}
	return ligands, nil
}

// GetBindingSites derives binding sites from the bound non-polymer entities
// of an entry. Curated annotations are layered on by the annotation use case,
// not here.
func (r *rcsbImpl) GetBindingSites(ctx context.Context, entryID string) ([]model.BindingSite, error) {
	graph, err := r.queryEntry(ctx, entryID, nonpolymerEntityFields)
	if err != nil {
		return nil, err
	}

	sites := make([]model.BindingSite, 0, len(graph.NonpolymerEntities))
	for _, ne := range graph.NonpolymerEntities {
		compID := ne.Identifiers.CompID
		if compID == "" {
			compID = ne.Comp.ChemComp.ID
		}
		details := ne.Entity.Description
		if details == "" {
			details = ne.Comp.ChemComp.Name
		}
		sites = append(sites, model.BindingSite{
			Label:   fmt.Sprintf("%s binding site", compID),
			CompID:  compID,
			Chains:  ne.Identifiers.AuthAsymIDs,
			Details: details,
			Source:  model.BindingSiteSourceAPI,
		})
	}
	return sites, nil
}
