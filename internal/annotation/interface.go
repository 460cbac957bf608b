package annotation

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetBindingSites(ctx context.Context, input GetBindingSitesInput) (GetBindingSitesOutput, error)
	GetUniprotComments(ctx context.Context, input GetUniprotCommentsInput) (GetUniprotCommentsOutput, error)
}
