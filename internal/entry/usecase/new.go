package usecase

import (
	"pdb-srv/internal/entry"
	"pdb-srv/internal/entry/repository"
	"pdb-srv/pkg/log"
	"pdb-srv/pkg/rcsb"
)

// implUseCase - Implementation of the entry UseCase interface
type implUseCase struct {
	rcsb      rcsb.IRCSB
	cacheRepo repository.CacheRepository
	l         log.Logger
}

// New - Factory function. cacheRepo may be nil (caching disabled).
func New(rcsbClient rcsb.IRCSB, cacheRepo repository.CacheRepository, l log.Logger) entry.UseCase {
	return &implUseCase{
		rcsb:      rcsbClient,
		cacheRepo: cacheRepo,
		l:         l,
	}
}
