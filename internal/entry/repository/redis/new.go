package redis

import (
	"pdb-srv/internal/entry/repository"
	"pdb-srv/pkg/log"
	pkgRedis "pdb-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
