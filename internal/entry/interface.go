package entry

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetDetails(ctx context.Context, input GetDetailsInput) (GetDetailsOutput, error)
	GetLigands(ctx context.Context, input GetLigandsInput) (GetLigandsOutput, error)
	GetPolymerEntities(ctx context.Context, input GetPolymerEntitiesInput) (GetPolymerEntitiesOutput, error)
}
