package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pdb-srv/internal/entry/repository"

	goredis "github.com/redis/go-redis/v9"
)

// entryDetailsTTL - entries change rarely; an hour keeps repeat lookups cheap
const entryDetailsTTL = 1 * time.Hour

func (r *implCacheRepository) GetEntryDetails(ctx context.Context, entryID string) ([]byte, error) {
	key := fmt.Sprintf("entry_details:%s", entryID)
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SaveEntryDetails(ctx context.Context, entryID string, data []byte) error {
	key := fmt.Sprintf("entry_details:%s", entryID)
	if err := r.redis.Set(ctx, key, data, entryDetailsTTL); err != nil {
		r.l.Errorf(ctx, "entry.repository.redis.SaveEntryDetails: failed to save to cache: %v", err)
		return repository.ErrCacheSetFailed
	}
	return nil
}
