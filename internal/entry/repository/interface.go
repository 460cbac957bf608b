package repository

import "context"

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetEntryDetails(ctx context.Context, entryID string) ([]byte, error)
	SaveEntryDetails(ctx context.Context, entryID string, data []byte) error
}
