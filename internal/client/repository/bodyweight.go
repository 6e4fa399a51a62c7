package repository

import (
	"context"

	"github.com/treiher/valens-client/internal/domain"
)

func (r *CachedRepository) SyncBodyWeight(ctx context.Context) ([]domain.BodyWeight, error) {
	return syncCollection(ctx, r, "body_weight", r.remote.ReadBodyWeight, r.cache.ReplaceAllBodyWeight)
}

func (r *CachedRepository) ReadBodyWeight(ctx context.Context) ([]domain.BodyWeight, error) {
	return r.cache.ReadBodyWeight(ctx)
}

func (r *CachedRepository) CreateBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) (domain.BodyWeight, error) {
	return executeThenMirror(ctx, r, "body_weight",
		func(ctx context.Context) (domain.BodyWeight, error) {
			return r.remote.CreateBodyWeight(ctx, bodyWeight)
		},
		r.cache.AddBodyWeight,
	)
}

func (r *CachedRepository) ReplaceBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) (domain.BodyWeight, error) {
	return executeThenMirror(ctx, r, "body_weight",
		func(ctx context.Context) (domain.BodyWeight, error) {
			return r.remote.ReplaceBodyWeight(ctx, bodyWeight)
		},
		r.cache.PutBodyWeight,
	)
}

func (r *CachedRepository) DeleteBodyWeight(ctx context.Context, date domain.Date) (domain.Date, error) {
	return executeThenMirror(ctx, r, "body_weight",
		func(ctx context.Context) (domain.Date, error) {
			return r.remote.DeleteBodyWeight(ctx, date)
		},
		r.cache.DeleteBodyWeight,
	)
}
