package usecase

import (
	"pdb-srv/internal/search"
	"pdb-srv/pkg/log"
	"pdb-srv/pkg/rcsb"
)

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	rcsb rcsb.IRCSB
	l    log.Logger
}

// New - Factory function
func New(rcsbClient rcsb.IRCSB, l log.Logger) search.UseCase {
	return &implUseCase{
		rcsb: rcsbClient,
		l:    l,
	}
}
