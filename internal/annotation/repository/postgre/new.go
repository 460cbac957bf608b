package postgre

import (
	"database/sql"

	"pdb-srv/internal/annotation/repository"
	"pdb-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory function
func New(db *sql.DB, l log.Logger) repository.KnowledgeRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
