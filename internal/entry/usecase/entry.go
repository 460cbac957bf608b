package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"pdb-srv/internal/entry"
	"pdb-srv/internal/model"
	"pdb-srv/pkg/rcsb"
)

// GetDetails - Full report data for one entry
// Flow: validate ID → check cache → fetch entry → fetch entities and ligands
// concurrently → cache → return
func (uc *implUseCase) GetDetails(ctx context.Context, input entry.GetDetailsInput) (entry.GetDetailsOutput, error) {
	if err := uc.validateEntryID(input.EntryID); err != nil {
		return entry.GetDetailsOutput{}, err
	}

	// Step 1: Cache lookup
	if cached, ok := uc.cachedDetails(ctx, input.EntryID); ok {
		return cached, nil
	}

	// Step 2: Entry metadata (404 rescue and salvage happen inside the fetcher)
	meta, err := uc.rcsb.GetEntry(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, rcsb.ErrNoData) {
			return entry.GetDetailsOutput{}, fmt.Errorf("%w: %s", entry.ErrEntryNotFound, input.EntryID)
		}
		uc.l.Errorf(ctx, "entry.usecase.GetDetails: entry lookup failed: %v", err)
		return entry.GetDetailsOutput{}, fmt.Errorf("%w: %s", entry.ErrEntryNotFound, input.EntryID)
	}

	// Step 3: Entities and ligands in parallel. Either failing only degrades
	// the report; the entry metadata alone is still worth returning.
	var (
		wg       sync.WaitGroup
		entities []model.PolymerEntity
		ligands  []model.Ligand
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		var peErr error
		entities, peErr = uc.rcsb.GetPolymerEntities(ctx, input.EntryID)
		if peErr != nil {
			uc.l.Warnf(ctx, "entry.usecase.GetDetails: polymer entity lookup failed for %s: %v", input.EntryID, peErr)
		}
	}()
	go func() {
		defer wg.Done()
		var ligErr error
		ligands, ligErr = uc.rcsb.GetLigands(ctx, input.EntryID)
		if ligErr != nil {
			uc.l.Warnf(ctx, "entry.usecase.GetDetails: ligand lookup failed for %s: %v", input.EntryID, ligErr)
		}
	}()
	wg.Wait()

	output := entry.GetDetailsOutput{
		Entry:           *meta,
		PolymerEntities: entities,
		Ligands:         ligands,
	}

	// Step 4: Cache for repeat lookups
	uc.saveDetails(ctx, input.EntryID, output)

	return output, nil
}

// GetLigands - Bound non-polymer components of one entry
func (uc *implUseCase) GetLigands(ctx context.Context, input entry.GetLigandsInput) (entry.GetLigandsOutput, error) {
	if err := uc.validateEntryID(input.EntryID); err != nil {
		return entry.GetLigandsOutput{}, err
	}

	ligands, err := uc.rcsb.GetLigands(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, rcsb.ErrNoData) {
			return entry.GetLigandsOutput{}, fmt.Errorf("%w: %s", entry.ErrEntryNotFound, input.EntryID)
		}
		uc.l.Errorf(ctx, "entry.usecase.GetLigands: ligand lookup failed: %v", err)
		return entry.GetLigandsOutput{}, fmt.Errorf("%w: %s", entry.ErrEntryNotFound, input.EntryID)
	}
	return entry.GetLigandsOutput{Ligands: ligands}, nil
}

// GetPolymerEntities - Polymer entities of one entry
func (uc *implUseCase) GetPolymerEntities(ctx context.Context, input entry.GetPolymerEntitiesInput) (entry.GetPolymerEntitiesOutput, error) {
	if err := uc.validateEntryID(input.EntryID); err != nil {
		return entry.GetPolymerEntitiesOutput{}, err
	}

	entities, err := uc.rcsb.GetPolymerEntities(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, rcsb.ErrNoData) {
			return entry.GetPolymerEntitiesOutput{}, fmt.Errorf("%w: %s", entry.ErrEntryNotFound, input.EntryID)
		}
		uc.l.Errorf(ctx, "entry.usecase.GetPolymerEntities: entity lookup failed: %v", err)
		return entry.GetPolymerEntitiesOutput{}, fmt.Errorf("%w: %s", entry.ErrEntryNotFound, input.EntryID)
	}
	return entry.GetPolymerEntitiesOutput{Entities: entities}, nil
}

func (uc *implUseCase) validateEntryID(entryID string) error {
	if len(entryID) != entry.EntryIDLength {
		return fmt.Errorf("%w: %q", entry.ErrInvalidEntryID, entryID)
	}
	return nil
}

func (uc *implUseCase) cachedDetails(ctx context.Context, entryID string) (entry.GetDetailsOutput, bool) {
	if uc.cacheRepo == nil {
		return entry.GetDetailsOutput{}, false
	}
	data, err := uc.cacheRepo.GetEntryDetails(ctx, entryID)
	if err != nil || data == nil {
		return entry.GetDetailsOutput{}, false
	}
	var cached entry.GetDetailsOutput
	if err := json.Unmarshal(data, &cached); err != nil {
		uc.l.Warnf(ctx, "entry.usecase.cachedDetails: failed to unmarshal cached details for %s: %v", entryID, err)
		return entry.GetDetailsOutput{}, false
	}
	cached.CacheHit = true
	uc.l.Debugf(ctx, "entry.usecase.cachedDetails: cache hit for %s", entryID)
	return cached, true
}

func (uc *implUseCase) saveDetails(ctx context.Context, entryID string, output entry.GetDetailsOutput) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(output)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.SaveEntryDetails(ctx, entryID, data); err != nil {
		uc.l.Warnf(ctx, "entry.usecase.saveDetails: failed to cache details for %s: %v", entryID, err)
	}
}
