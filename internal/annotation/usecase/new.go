package usecase

import (
	"pdb-srv/internal/annotation"
	"pdb-srv/internal/annotation/repository"
	"pdb-srv/pkg/log"
	"pdb-srv/pkg/rcsb"
	"pdb-srv/pkg/uniprot"
)

// implUseCase - Implementation of the annotation UseCase interface
type implUseCase struct {
	rcsb          rcsb.IRCSB
	uniprot       uniprot.IUniprot
	knowledgeRepo repository.KnowledgeRepository
	l             log.Logger
}

// New - Factory function. knowledgeRepo may be nil (no curated fallback).
func New(
	rcsbClient rcsb.IRCSB,
	uniprotClient uniprot.IUniprot,
	knowledgeRepo repository.KnowledgeRepository,
	l log.Logger,
) annotation.UseCase {
	return &implUseCase{
		rcsb:          rcsbClient,
		uniprot:       uniprotClient,
		knowledgeRepo: knowledgeRepo,
		l:             l,
	}
}
