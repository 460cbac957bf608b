package usecase

import (
	"context"
	"errors"
	"testing"

	"pdb-srv/internal/entry"
	"pdb-srv/internal/entry/repository"
	"pdb-srv/internal/model"
	"pdb-srv/pkg/log"
	"pdb-srv/pkg/rcsb"
)

type fakeRCSB struct {
	entry       *model.EntryMetadata
	entryErr    error
	entities    []model.PolymerEntity
	entitiesErr error
	ligands     []model.Ligand
	ligandsErr  error

	entryCalls int
}

func (f *fakeRCSB) GetEntry(_ context.Context, _ string) (*model.EntryMetadata, error) {
	f.entryCalls++
	return f.entry, f.entryErr
}

func (f *fakeRCSB) GetPolymerEntities(_ context.Context, _ string) ([]model.PolymerEntity, error) {
	return f.entities, f.entitiesErr
}

func (f *fakeRCSB) GetLigands(_ context.Context, _ string) ([]model.Ligand, error) {
	return f.ligands, f.ligandsErr
}

func (f *fakeRCSB) GetBindingSites(_ context.Context, _ string) ([]model.BindingSite, error) {
	return nil, nil
}

func (f *fakeRCSB) Search(_ context.Context, _ string, _ int) ([]model.SearchHit, int, error) {
	return nil, 0, nil
}

type fakeCache struct {
	store map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (f *fakeCache) GetEntryDetails(_ context.Context, entryID string) ([]byte, error) {
	data, ok := f.store[entryID]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return data, nil
}

func (f *fakeCache) SaveEntryDetails(_ context.Context, entryID string, data []byte) error {
	f.store[entryID] = data
	return nil
}

func TestGetDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("returns entry with entities and ligands", func(t *testing.T) {
		client := &fakeRCSB{
			entry: &model.EntryMetadata{
				RcsbID: "6LU7",
				Struct: model.EntryStruct{Title: "Main protease"},
			},
			entities: []model.PolymerEntity{{EntityID: "1", Description: "3C-like proteinase"}},
			ligands:  []model.Ligand{{CompID: "02J"}},
		}
		uc := New(client, newFakeCache(), log.NewNop())

		out, err := uc.GetDetails(ctx, entry.GetDetailsInput{EntryID: "6LU7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entry.Struct.Title != "Main protease" {
			t.Errorf("title mismatch: got %q", out.Entry.Struct.Title)
		}
		if len(out.PolymerEntities) != 1 || len(out.Ligands) != 1 {
			t.Errorf("expected 1 entity and 1 ligand, got %d/%d", len(out.PolymerEntities), len(out.Ligands))
		}
		if out.CacheHit {
			t.Error("first lookup must not be a cache hit")
		}
	})

	t.Run("second lookup is served from cache", func(t *testing.T) {
		client := &fakeRCSB{
			entry: &model.EntryMetadata{RcsbID: "6LU7"},
		}
		uc := New(client, newFakeCache(), log.NewNop())

		if _, err := uc.GetDetails(ctx, entry.GetDetailsInput{EntryID: "6LU7"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := uc.GetDetails(ctx, entry.GetDetailsInput{EntryID: "6LU7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.CacheHit {
			t.Error("expected cache hit")
		}
		if client.entryCalls != 1 {
			t.Errorf("expected 1 upstream call, got %d", client.entryCalls)
		}
	})

	t.Run("degrades to metadata when entity lookups fail", func(t *testing.T) {
		client := &fakeRCSB{
			entry:       &model.EntryMetadata{RcsbID: "6LU7"},
			entitiesErr: rcsb.ErrNoData,
			ligandsErr:  rcsb.ErrNoData,
		}
		uc := New(client, nil, log.NewNop())

		out, err := uc.GetDetails(ctx, entry.GetDetailsInput{EntryID: "6LU7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entry.RcsbID != "6LU7" {
			t.Errorf("entry mismatch: got %q", out.Entry.RcsbID)
		}
		if len(out.PolymerEntities) != 0 || len(out.Ligands) != 0 {
			t.Error("expected empty entities and ligands")
		}
	})

	t.Run("maps upstream absence to not found", func(t *testing.T) {
		client := &fakeRCSB{entryErr: rcsb.ErrNoData}
		uc := New(client, nil, log.NewNop())

		_, err := uc.GetDetails(ctx, entry.GetDetailsInput{EntryID: "XXXX"})
		if !errors.Is(err, entry.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("rejects malformed identifiers", func(t *testing.T) {
		uc := New(&fakeRCSB{}, nil, log.NewNop())

		for _, id := range []string{"", "6LU", "6LU77"} {
			_, err := uc.GetDetails(ctx, entry.GetDetailsInput{EntryID: id})
			if !errors.Is(err, entry.ErrInvalidEntryID) {
				t.Errorf("id %q: expected ErrInvalidEntryID, got %v", id, err)
			}
		}
	})
}

func TestGetLigands(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ligands", func(t *testing.T) {
		client := &fakeRCSB{ligands: []model.Ligand{{CompID: "ATP", Name: "Adenosine triphosphate"}}}
		uc := New(client, nil, log.NewNop())

		out, err := uc.GetLigands(ctx, entry.GetLigandsInput{EntryID: "1ABC"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Ligands) != 1 || out.Ligands[0].CompID != "ATP" {
			t.Errorf("ligand mismatch: %+v", out.Ligands)
		}
	})

	t.Run("maps upstream absence to not found", func(t *testing.T) {
		client := &fakeRCSB{ligandsErr: rcsb.ErrNoData}
		uc := New(client, nil, log.NewNop())

		_, err := uc.GetLigands(ctx, entry.GetLigandsInput{EntryID: "XXXX"})
		if !errors.Is(err, entry.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}
