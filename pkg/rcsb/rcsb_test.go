package rcsb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"pdb-srv/pkg/fetch"
	"pdb-srv/pkg/log"
)

type fakeFetcher struct {
	raw      json.RawMessage
	requests []fetch.Request
}

func (f *fakeFetcher) Fetch(_ context.Context, req fetch.Request) json.RawMessage {
	f.requests = append(f.requests, req)
	return f.raw
}

func newTestClient(fetcher fetch.IFetcher) IRCSB {
	return NewRCSB(RCSBConfig{
		DataURL:    "https://data.test/rest/v1/core",
		GraphQLURL: "https://data.test/graphql",
		SearchURL:  "https://search.test/query",
	}, fetcher, log.NewNop())
}

func TestGetEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes entry metadata", func(t *testing.T) {
		fetcher := &fakeFetcher{raw: json.RawMessage(`{
			"rcsb_id": "4HHB",
			"struct": {"title": "Human deoxyhaemoglobin"}
		}`)}
		client := newTestClient(fetcher)

		entry, err := client.GetEntry(ctx, "4HHB")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.RcsbID != "4HHB" {
			t.Errorf("expected rcsb id 4HHB, got %q", entry.RcsbID)
		}
		if entry.Struct.Title != "Human deoxyhaemoglobin" {
			t.Errorf("unexpected title %q", entry.Struct.Title)
		}
		if len(fetcher.requests) != 1 {
			t.Fatalf("expected 1 request, got %d", len(fetcher.requests))
		}
		if got := fetcher.requests[0].URL; got != "https://data.test/rest/v1/core/entry/4HHB" {
			t.Errorf("unexpected url %q", got)
		}
	})

	t.Run("fills identifier on salvaged body", func(t *testing.T) {
		fetcher := &fakeFetcher{raw: json.RawMessage(`{"struct": {"title": "Salvaged"}}`)}
		client := newTestClient(fetcher)

		entry, err := client.GetEntry(ctx, "6LU7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.RcsbID != "6LU7" {
			t.Errorf("expected rcsb id 6LU7, got %q", entry.RcsbID)
		}
	})

	t.Run("nil body maps to ErrNoData", func(t *testing.T) {
		client := newTestClient(&fakeFetcher{})

		if _, err := client.GetEntry(ctx, "9XYZ"); !errors.Is(err, ErrNoData) {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})
}

func TestGetPolymerEntities(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes entities", func(t *testing.T) {
		fetcher := &fakeFetcher{raw: json.RawMessage(`{"data": {"entry": {
			"polymer_entities": [{
				"rcsb_polymer_entity_container_identifiers": {"entity_id": "1", "uniprot_ids": ["P0DTD1"]},
				"rcsb_polymer_entity": {"pdbx_description": "Main protease"},
				"entity_poly": {"rcsb_entity_polymer_type": "Protein", "rcsb_sample_sequence_length": 306},
				"rcsb_entity_source_organism": [{"scientific_name": "SARS-CoV-2"}]
			}]
		}}}`)}
		client := newTestClient(fetcher)

		entities, err := client.GetPolymerEntities(ctx, "6LU7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entities) != 1 {
			t.Fatalf("expected 1 entity, got %d", len(entities))
		}
		entity := entities[0]
		if entity.EntityID != "1" || entity.Description != "Main protease" {
			t.Errorf("unexpected entity %+v", entity)
		}
		if entity.SequenceLength != 306 {
			t.Errorf("expected length 306, got %d", entity.SequenceLength)
		}
		if len(entity.Organisms) != 1 || entity.Organisms[0] != "SARS-CoV-2" {
			t.Errorf("unexpected organisms %v", entity.Organisms)
		}
		if fetcher.requests[0].Method != http.MethodPost {
			t.Errorf("expected POST, got %q", fetcher.requests[0].Method)
		}
	})

	t.Run("null entry maps to ErrNoData", func(t *testing.T) {
		fetcher := &fakeFetcher{raw: json.RawMessage(`{"data": {"entry": null}}`)}
		client := newTestClient(fetcher)

		if _, err := client.GetPolymerEntities(ctx, "9XYZ"); !errors.Is(err, ErrNoData) {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})
}

func TestGetLigands(t *testing.T) {
	ctx := context.Background()

	fetcher := &fakeFetcher{raw: json.RawMessage(`{"data": {"entry": {
		"nonpolymer_entities": [{
			"rcsb_nonpolymer_entity_container_identifiers": {"comp_id": "HEM", "auth_asym_ids": ["A", "C"]},
			"rcsb_nonpolymer_entity": {"pdbx_description": "Protoporphyrin IX containing Fe"},
			"nonpolymer_comp": {"chem_comp": {"id": "HEM", "name": "PROTOPORPHYRIN IX CONTAINING FE", "formula": "C34 H32 Fe N4 O4", "formula_weight": 616.49}}
		}]
	}}}`)}
	client := newTestClient(fetcher)

	ligands, err := client.GetLigands(ctx, "4HHB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ligands) != 1 {
		t.Fatalf("expected 1 ligand, got %d", len(ligands))
	}
	ligand := ligands[0]
	if ligand.CompID != "HEM" {
		t.Errorf("expected comp id HEM, got %q", ligand.CompID)
	}
	if ligand.FormulaWeight != 616.49 {
		t.Errorf("unexpected formula weight %v", ligand.FormulaWeight)
	}
	if len(ligand.Chains) != 2 {
		t.Errorf("unexpected chains %v", ligand.Chains)
	}
}

func TestGetBindingSites(t *testing.T) {
	ctx := context.Background()

	fetcher := &fakeFetcher{raw: json.RawMessage(`{"data": {"entry": {
		"nonpolymer_entities": [{
			"rcsb_nonpolymer_entity_container_identifiers": {"comp_id": "N3", "auth_asym_ids": ["A"]},
			"rcsb_nonpolymer_entity": {"pdbx_description": "peptide-like inhibitor N3"},
			"nonpolymer_comp": {"chem_comp": {"id": "N3", "name": "inhibitor N3"}}
		}]
	}}}`)}
	client := newTestClient(fetcher)

	sites, err := client.GetBindingSites(ctx, "6LU7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sites) != 1 {
		t.Fatalf("expected 1 site, got %d", len(sites))
	}
	if sites[0].Label != "N3 binding site" {
		t.Errorf("unexpected label %q", sites[0].Label)
	}
	if sites[0].Details != "peptide-like inhibitor N3" {
		t.Errorf("unexpected details %q", sites[0].Details)
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes result set", func(t *testing.T) {
		fetcher := &fakeFetcher{raw: json.RawMessage(`{
			"result_set": [
				{"identifier": "6LU7", "score": 1.0},
				{"identifier": "7BQY", "score": 0.92}
			],
			"total_count": 42
		}`)}
		client := newTestClient(fetcher)

		hits, total, err := client.Search(ctx, "main protease", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 42 {
			t.Errorf("expected total 42, got %d", total)
		}
		if len(hits) != 2 || hits[0].Identifier != "6LU7" {
			t.Errorf("unexpected hits %+v", hits)
		}
	})

	t.Run("no content maps to ErrNoData", func(t *testing.T) {
		client := newTestClient(&fakeFetcher{})

		if _, _, err := client.Search(ctx, "nothing matches this", 10); !errors.Is(err, ErrNoData) {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})
}
